package compare

import (
	"strconv"
	"strings"

	"evdealer/models"
)

// Row 比較表的一列：屬性名稱與每台車的值（缺漏為 "-"）
type Row struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type Table struct {
	Vehicles []string `json:"vehicles"`
	Rows     []Row    `json:"rows"`
}

const missing = "-"

type column struct {
	label string
	value func(v *models.Vehicle) string
}

var columns = []column{
	{"Model", func(v *models.Vehicle) string { return text(v.Model) }},
	{"Version", func(v *models.Vehicle) string { return text(v.Version) }},
	{"Price (VND)", func(v *models.Vehicle) string { return number(v.Price, 0) }},
	{"Range (km)", func(v *models.Vehicle) string { return number(v.RangeKm, 0) }},
	{"Top speed (km/h)", func(v *models.Vehicle) string { return number(v.TopSpeedKmh, 0) }},
	{"Motor power (kW)", func(v *models.Vehicle) string { return number(v.MotorPowerKw, 0) }},
	{"0-100 km/h (s)", func(v *models.Vehicle) string { return number(v.AccelerationSec, 1) }},
	{"Charging time", func(v *models.Vehicle) string { return text(v.ChargingTime) }},
	{"Battery", func(v *models.Vehicle) string { return text(v.BatteryType) }},
	{"Seats", func(v *models.Vehicle) string {
		if v.SeatingCapacity == nil {
			return missing
		}
		return strconv.Itoa(*v.SeatingCapacity)
	}},
	{"Drivetrain", func(v *models.Vehicle) string { return text(v.Drivetrain) }},
	{"Features", func(v *models.Vehicle) string { return list(v.Features) }},
	{"Safety", func(v *models.Vehicle) string { return list(v.SafetyFeatures) }},
	{"In stock", func(v *models.Vehicle) string { return strconv.Itoa(v.Stock) }},
}

// BuildTable 將目前清單投影成比較表
func BuildTable(set Set) Table {
	table := Table{
		Vehicles: make([]string, len(set)),
		Rows:     make([]Row, 0, len(columns)),
	}
	for i := range set {
		table.Vehicles[i] = set[i].Name
	}
	for _, col := range columns {
		row := Row{Label: col.label, Values: make([]string, len(set))}
		for i := range set {
			row.Values[i] = col.value(&set[i])
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func text(s string) string {
	if s == "" {
		return missing
	}
	return s
}

func number(f *float64, prec int) string {
	if f == nil {
		return missing
	}
	return strconv.FormatFloat(*f, 'f', prec, 64)
}

func list(items []string) string {
	if len(items) == 0 {
		return missing
	}
	return strings.Join(items, ", ")
}
