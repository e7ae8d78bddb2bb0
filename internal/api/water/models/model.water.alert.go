// Package models - FloodAlert thuộc domain Water.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AlertSeverity - Mức cảnh báo lũ
type AlertSeverity string

const (
	AlertSeverityWatch   AlertSeverity = "watch"   // Theo dõi
	AlertSeverityAlert   AlertSeverity = "alert"   // Cảnh báo
	AlertSeverityWarning AlertSeverity = "warning" // Khẩn cấp
)

// Rank trả về hạng số của mức cảnh báo để sắp xếp theo độ khẩn cấp
// (warning > alert > watch). Thứ tự chuỗi mặc định không phản ánh độ khẩn cấp
// nên mọi sắp xếp phải dùng hạng này.
func (s AlertSeverity) Rank() int {
	switch s {
	case AlertSeverityWarning:
		return 3
	case AlertSeverityAlert:
		return 2
	case AlertSeverityWatch:
		return 1
	default:
		return 0
	}
}

// FloodAlert - Cảnh báo lũ đang hiệu lực trên một lưu vực
type FloodAlert struct {
	ID               primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Basin            string             `json:"basin" bson:"basin"`
	Location         string             `json:"location" bson:"location"`
	Severity         AlertSeverity      `json:"severity" bson:"severity" index:"single:1"`
	Impact           string             `json:"impact" bson:"impact"`
	Advisory         string             `json:"advisory" bson:"advisory"`
	LastUpdatedAt    string             `json:"lastUpdatedAt" bson:"lastUpdatedAt"`
	ExpectedPeakDate string             `json:"expectedPeakDate" bson:"expectedPeakDate"`
	SourceTag        string             `json:"sourceTag" bson:"sourceTag" index:"single:1"`
}
