// Package waterdto - các cấu trúc response cho domain Water (tầng transport).
package waterdto

import (
	"math/rand"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cwc_water/internal/api/water/models"
)

// randomBase36ID sinh một id dự phòng dạng base-36 khi document không mang
// định danh nội bộ. Chỉ chấp nhận được vì DTO là dữ liệu mẫu read-only,
// không bao giờ được truy vấn lại theo id này.
func randomBase36ID() string {
	return strconv.FormatUint(rand.Uint64(), 36)
}

// resolveID chuyển định danh nội bộ thành chuỗi, sinh id dự phòng nếu thiếu.
func resolveID(id primitive.ObjectID) string {
	if id.IsZero() {
		return randomBase36ID()
	}
	return id.Hex()
}

// ReservoirLevelDTO - ReservoirLevel kèm id chuỗi, bỏ định danh nội bộ
type ReservoirLevelDTO struct {
	Id string `json:"id"`
	models.ReservoirLevel
}

// FromReservoirLevel chuyển model sang DTO
func FromReservoirLevel(m models.ReservoirLevel) ReservoirLevelDTO {
	return ReservoirLevelDTO{Id: resolveID(m.ID), ReservoirLevel: m}
}

// FromReservoirLevels chuyển danh sách model sang DTO, luôn trả về mảng không nil
func FromReservoirLevels(ms []models.ReservoirLevel) []ReservoirLevelDTO {
	dtos := make([]ReservoirLevelDTO, 0, len(ms))
	for _, m := range ms {
		dtos = append(dtos, FromReservoirLevel(m))
	}
	return dtos
}

// BasinDischargeDTO - BasinDischarge kèm id chuỗi, bỏ định danh nội bộ
type BasinDischargeDTO struct {
	Id string `json:"id"`
	models.BasinDischarge
}

// FromBasinDischarge chuyển model sang DTO
func FromBasinDischarge(m models.BasinDischarge) BasinDischargeDTO {
	return BasinDischargeDTO{Id: resolveID(m.ID), BasinDischarge: m}
}

// FromBasinDischarges chuyển danh sách model sang DTO, luôn trả về mảng không nil
func FromBasinDischarges(ms []models.BasinDischarge) []BasinDischargeDTO {
	dtos := make([]BasinDischargeDTO, 0, len(ms))
	for _, m := range ms {
		dtos = append(dtos, FromBasinDischarge(m))
	}
	return dtos
}

// RainfallSummaryDTO - RainfallSummary kèm id chuỗi, bỏ định danh nội bộ
type RainfallSummaryDTO struct {
	Id string `json:"id"`
	models.RainfallSummary
}

// FromRainfallSummary chuyển model sang DTO
func FromRainfallSummary(m models.RainfallSummary) RainfallSummaryDTO {
	return RainfallSummaryDTO{Id: resolveID(m.ID), RainfallSummary: m}
}

// FromRainfallSummaries chuyển danh sách model sang DTO, luôn trả về mảng không nil
func FromRainfallSummaries(ms []models.RainfallSummary) []RainfallSummaryDTO {
	dtos := make([]RainfallSummaryDTO, 0, len(ms))
	for _, m := range ms {
		dtos = append(dtos, FromRainfallSummary(m))
	}
	return dtos
}

// FloodAlertDTO - FloodAlert kèm id chuỗi, bỏ định danh nội bộ
type FloodAlertDTO struct {
	Id string `json:"id"`
	models.FloodAlert
}

// FromFloodAlert chuyển model sang DTO
func FromFloodAlert(m models.FloodAlert) FloodAlertDTO {
	return FloodAlertDTO{Id: resolveID(m.ID), FloodAlert: m}
}

// FromFloodAlerts chuyển danh sách model sang DTO, luôn trả về mảng không nil
func FromFloodAlerts(ms []models.FloodAlert) []FloodAlertDTO {
	dtos := make([]FloodAlertDTO, 0, len(ms))
	for _, m := range ms {
		dtos = append(dtos, FromFloodAlert(m))
	}
	return dtos
}

// WaterProjectDTO - WaterProject kèm id chuỗi, bỏ định danh nội bộ
type WaterProjectDTO struct {
	Id string `json:"id"`
	models.WaterProject
}

// FromWaterProject chuyển model sang DTO
func FromWaterProject(m models.WaterProject) WaterProjectDTO {
	return WaterProjectDTO{Id: resolveID(m.ID), WaterProject: m}
}

// FromWaterProjects chuyển danh sách model sang DTO, luôn trả về mảng không nil
func FromWaterProjects(ms []models.WaterProject) []WaterProjectDTO {
	dtos := make([]WaterProjectDTO, 0, len(ms))
	for _, m := range ms {
		dtos = append(dtos, FromWaterProject(m))
	}
	return dtos
}

// DashboardHighlights - Thống kê tổng hợp cho trang dashboard
type DashboardHighlights struct {
	TotalStations        int    `json:"totalStations"`
	ActiveAlerts         int    `json:"activeAlerts"`
	RiversMonitored      int    `json:"riversMonitored"`
	LastUpdated          string `json:"lastUpdated"`
	AvgReservoirStorage  int    `json:"avgReservoirStorage"`
	AvgRainfallDeparture int    `json:"avgRainfallDeparture"`
}
