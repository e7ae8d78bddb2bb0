// Package models - RainfallSummary thuộc domain Water.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RainfallCategory - Phân loại lượng mưa ngày theo ngưỡng cố định
type RainfallCategory string

const (
	RainfallCategoryDry      RainfallCategory = "dry"      // Không mưa
	RainfallCategoryLight    RainfallCategory = "light"    // Dưới 15mm
	RainfallCategoryModerate RainfallCategory = "moderate" // Dưới 65mm
	RainfallCategoryHeavy    RainfallCategory = "heavy"    // Từ 65mm trở lên
)

// DeriveRainfallCategory tính phân loại từ lượng mưa (mm).
func DeriveRainfallCategory(rainfallMm float64) RainfallCategory {
	switch {
	case rainfallMm == 0:
		return RainfallCategoryDry
	case rainfallMm < 15:
		return RainfallCategoryLight
	case rainfallMm < 65:
		return RainfallCategoryModerate
	default:
		return RainfallCategoryHeavy
	}
}

// RainfallSummary - Bản ghi lượng mưa ngày theo vùng khí tượng
type RainfallSummary struct {
	ID                         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Region                     string             `json:"region" bson:"region"`
	State                      string             `json:"state" bson:"state"`
	District                   string             `json:"district" bson:"district"`
	Date                       string             `json:"date" bson:"date" index:"single:1,order:-1"`
	RainfallMm                 float64            `json:"rainfallMm" bson:"rainfallMm"`
	DepartureFromNormalPercent float64            `json:"departureFromNormalPercent" bson:"departureFromNormalPercent"`
	Category                   RainfallCategory   `json:"category" bson:"category"`
	SourceTag                  string             `json:"sourceTag" bson:"sourceTag" index:"single:1"`
}
