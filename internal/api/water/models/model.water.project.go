// Package models - WaterProject thuộc domain Water.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WaterProject - Trạng thái một dự án thủy lợi / quan trắc
type WaterProject struct {
	ID                primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ProjectName       string             `json:"projectName" bson:"projectName"`
	Basin             string             `json:"basin" bson:"basin"`
	State             string             `json:"state" bson:"state"`
	Phase             string             `json:"phase" bson:"phase"`
	BudgetCrore       int                `json:"budgetCrore" bson:"budgetCrore"`
	CompletionPercent int                `json:"completionPercent" bson:"completionPercent" index:"single:1,order:-1"`
	BeneficiariesLakh int                `json:"beneficiariesLakh" bson:"beneficiariesLakh"`
	CommissionYear    int                `json:"commissionYear" bson:"commissionYear"`
	NextMilestone     string             `json:"nextMilestone" bson:"nextMilestone"`
	Issues            []string           `json:"issues" bson:"issues"`
	SourceTag         string             `json:"sourceTag" bson:"sourceTag" index:"single:1"`
}
