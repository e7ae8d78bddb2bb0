// Package models - BasinDischarge thuộc domain Water.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DischargeStatus - Trạng thái lưu lượng so với mức báo động của trạm
type DischargeStatus string

const (
	DischargeStatusNormal DischargeStatus = "normal" // Dưới mức báo động
	DischargeStatusAlert  DischargeStatus = "alert"  // Từ mức báo động đến dưới mức nguy hiểm
	DischargeStatusDanger DischargeStatus = "danger" // Từ mức nguy hiểm trở lên
)

// DeriveDischargeStatus tính trạng thái từ lưu lượng và hai ngưỡng của trạm.
// Bất biến: dangerLevel > alertLevel cho mọi trạm.
func DeriveDischargeStatus(dischargeCumecs float64, alertLevel float64, dangerLevel float64) DischargeStatus {
	switch {
	case dischargeCumecs >= dangerLevel:
		return DischargeStatusDanger
	case dischargeCumecs >= alertLevel:
		return DischargeStatusAlert
	default:
		return DischargeStatusNormal
	}
}

// BasinDischarge - Bản ghi lưu lượng tại một trạm đo theo ngày
type BasinDischarge struct {
	ID               primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Basin            string             `json:"basin" bson:"basin"`
	Station          string             `json:"station" bson:"station"`
	River            string             `json:"river" bson:"river"`
	State            string             `json:"state" bson:"state"`
	AlertLevelCumecs float64            `json:"alertLevelCumecs" bson:"alertLevelCumecs"`
	DangerLevelCumecs float64           `json:"dangerLevelCumecs" bson:"dangerLevelCumecs"`
	Date             string             `json:"date" bson:"date" index:"single:1,order:-1"`
	DischargeCumecs  int                `json:"dischargeCumecs" bson:"dischargeCumecs"`
	Status           DischargeStatus    `json:"status" bson:"status"`
	DeviationPercent float64            `json:"deviationPercent" bson:"deviationPercent"`
	SourceTag        string             `json:"sourceTag" bson:"sourceTag" index:"single:1"`
}
