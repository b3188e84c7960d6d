package catalog

import (
	"sort"
	"strings"

	"evdealer/models"
)

type SortKey string

const (
	SortNone         SortKey = ""
	SortName         SortKey = "name"
	SortModel        SortKey = "model"
	SortPrice        SortKey = "price"
	SortRange        SortKey = "range"
	SortTopSpeed     SortKey = "topSpeed"
	SortMotorPower   SortKey = "motorPower"
	SortAcceleration SortKey = "acceleration"
	SortStock        SortKey = "stock"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Valid 是否為支援的排序欄位
func (k SortKey) Valid() bool {
	switch k {
	case SortNone, SortName, SortModel, SortPrice, SortRange, SortTopSpeed,
		SortMotorPower, SortAcceleration, SortStock:
		return true
	}
	return false
}

func (k SortKey) numeric(v *models.Vehicle) *float64 {
	switch k {
	case SortPrice:
		return v.Price
	case SortRange:
		return v.RangeKm
	case SortTopSpeed:
		return v.TopSpeedKmh
	case SortMotorPower:
		return v.MotorPowerKw
	case SortAcceleration:
		return v.AccelerationSec
	case SortStock:
		stock := float64(v.Stock)
		return &stock
	}
	return nil
}

func (k SortKey) text(v *models.Vehicle) string {
	if k == SortModel {
		return strings.ToLower(v.Model)
	}
	return strings.ToLower(v.Name)
}

// sortVehicles 穩定排序；缺少數值的車輛不論方向都排在最後
func sortVehicles(vehicles []models.Vehicle, key SortKey, dir Direction) {
	if key == SortNone || !key.Valid() {
		return
	}
	desc := dir == Desc

	sort.SliceStable(vehicles, func(i, j int) bool {
		a, b := &vehicles[i], &vehicles[j]

		if key == SortName || key == SortModel {
			ta, tb := key.text(a), key.text(b)
			if desc {
				return ta > tb
			}
			return ta < tb
		}

		na, nb := key.numeric(a), key.numeric(b)
		switch {
		case na == nil && nb == nil:
			return false
		case na == nil:
			return false
		case nb == nil:
			return true
		}
		if desc {
			return *na > *nb
		}
		return *na < *nb
	})
}
