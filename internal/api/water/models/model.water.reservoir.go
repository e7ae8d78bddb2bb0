// Package models - các entity dữ liệu thủy văn tổng hợp (domain Water).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReservoirLevel - Bản ghi mực nước hồ chứa theo ngày
type ReservoirLevel struct {
	ID                  primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ReservoirName       string             `json:"reservoirName" bson:"reservoirName"`
	Basin               string             `json:"basin" bson:"basin"`
	River               string             `json:"river" bson:"river"`
	State               string             `json:"state" bson:"state"`
	LiveCapacityTMC     float64            `json:"liveCapacityTMC" bson:"liveCapacityTMC"`
	FullReservoirLevelM float64            `json:"fullReservoirLevelM" bson:"fullReservoirLevelM"`
	Date                string             `json:"date" bson:"date" index:"single:1,order:-1"`
	LiveStorageTMC      float64            `json:"liveStorageTMC" bson:"liveStorageTMC"`
	PercentLiveStorage  float64            `json:"percentLiveStorage" bson:"percentLiveStorage"`
	WaterLevelMeters    float64            `json:"waterLevelMeters" bson:"waterLevelMeters"`
	InflowCusecs        int                `json:"inflowCusecs" bson:"inflowCusecs"`
	OutflowCusecs       int                `json:"outflowCusecs" bson:"outflowCusecs"`
	NetInflowCusecs     int                `json:"netInflowCusecs" bson:"netInflowCusecs"`
	SourceTag           string             `json:"sourceTag" bson:"sourceTag" index:"single:1"`
}
