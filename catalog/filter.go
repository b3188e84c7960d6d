// Package catalog 電動車目錄的篩選與排序
package catalog

import (
	"strings"

	"evdealer/models"
)

// Range 閉區間，Min/Max 為 nil 表示不限
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Active 是否有設定任一邊界
func (r Range) Active() bool {
	return r.Min != nil || r.Max != nil
}

// Allows 檢查數值是否落在區間內；value 為 nil（資料缺漏）一律放行
func (r Range) Allows(value *float64) bool {
	if value == nil {
		return true
	}
	if r.Min != nil && *value < *r.Min {
		return false
	}
	if r.Max != nil && *value > *r.Max {
		return false
	}
	return true
}

// FilterSpec 使用者選擇的篩選條件與排序；零值代表不篩選
type FilterSpec struct {
	Search string `json:"search,omitempty"`

	Price        Range `json:"price"`
	RangeKm      Range `json:"rangeKm"`
	MotorPower   Range `json:"motorPower"`
	TopSpeed     Range `json:"topSpeed"`
	Acceleration Range `json:"acceleration"`

	BatteryType     string `json:"batteryType,omitempty"`
	SeatingCapacity *int   `json:"seatingCapacity,omitempty"`
	Drivetrain      string `json:"drivetrain,omitempty"`
	ReleaseStatus   string `json:"releaseStatus,omitempty"`

	Colors         []string `json:"colors,omitempty"`
	SafetyFeatures []string `json:"safetyFeatures,omitempty"`

	Sort  SortKey   `json:"sort,omitempty"`
	Order Direction `json:"order,omitempty"`
}

// Apply 篩選後排序，不修改輸入；沒有結果時回傳空 slice
func Apply(vehicles []models.Vehicle, spec FilterSpec) []models.Vehicle {
	result := make([]models.Vehicle, 0, len(vehicles))
	for i := range vehicles {
		if spec.Matches(&vehicles[i]) {
			result = append(result, vehicles[i])
		}
	}
	sortVehicles(result, spec.Sort, spec.Order)
	return result
}

// Matches 車輛是否滿足所有啟用中的條件
func (s FilterSpec) Matches(v *models.Vehicle) bool {
	if !matchesSearch(v, s.Search) {
		return false
	}

	if !s.Price.Allows(v.Price) ||
		!s.RangeKm.Allows(v.RangeKm) ||
		!s.MotorPower.Allows(v.MotorPowerKw) ||
		!s.TopSpeed.Allows(v.TopSpeedKmh) ||
		!s.Acceleration.Allows(v.AccelerationSec) {
		return false
	}

	if s.BatteryType != "" && v.BatteryType != s.BatteryType {
		return false
	}
	if s.Drivetrain != "" && v.Drivetrain != s.Drivetrain {
		return false
	}
	if s.ReleaseStatus != "" && v.ReleaseStatus != s.ReleaseStatus {
		return false
	}
	if s.SeatingCapacity != nil && (v.SeatingCapacity == nil || *v.SeatingCapacity != *s.SeatingCapacity) {
		return false
	}

	if len(s.Colors) > 0 && !anyColor(v, s.Colors) {
		return false
	}
	if len(s.SafetyFeatures) > 0 && !overlaps(v.SafetyFeatures, s.SafetyFeatures) {
		return false
	}
	return true
}

func matchesSearch(v *models.Vehicle, search string) bool {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return true
	}
	for _, field := range []string{v.Name, v.Model, v.Version, v.SKU} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func anyColor(v *models.Vehicle, selected []string) bool {
	for _, c := range selected {
		if v.HasColor(c) {
			return true
		}
	}
	return false
}

func overlaps(have, selected []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, h := range have {
		set[h] = struct{}{}
	}
	for _, s := range selected {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}
