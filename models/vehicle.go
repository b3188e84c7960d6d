package models

import "time"

// Vehicle 電動車目錄資料；數值欄位為指標，nil 代表資料缺漏
type Vehicle struct {
	ID              string   `gorm:"primaryKey;size:64" json:"id"`
	SKU             string   `gorm:"size:64;index" json:"sku"`
	Name            string   `gorm:"size:100;not null" json:"name"`
	Model           string   `gorm:"size:100;not null" json:"model"`
	Version         string   `gorm:"size:100" json:"version,omitempty"`
	Color           string   `gorm:"size:50" json:"color,omitempty"`
	Colors          []string `gorm:"serializer:json" json:"colors,omitempty"`
	Price           *float64 `gorm:"type:decimal(14,2)" json:"price"`
	WholesalePrice  *float64 `gorm:"type:decimal(14,2)" json:"wholesalePrice,omitempty"`
	RangeKm         *float64 `json:"rangeKm"`
	TopSpeedKmh     *float64 `json:"topSpeedKmh"`
	MotorPowerKw    *float64 `json:"motorPowerKw"`
	AccelerationSec *float64 `json:"accelerationSec"`
	ChargingTime    string   `gorm:"size:100" json:"chargingTime,omitempty"`
	BatteryType     string   `gorm:"size:50" json:"batteryType,omitempty"`
	SeatingCapacity *int     `json:"seatingCapacity"`
	Drivetrain      string   `gorm:"size:20" json:"drivetrain,omitempty"`
	ReleaseStatus   string   `gorm:"size:20" json:"releaseStatus,omitempty"`
	Features        []string `gorm:"serializer:json" json:"features,omitempty"`
	SafetyFeatures  []string `gorm:"serializer:json" json:"safetyFeatures,omitempty"`
	Images          []string `gorm:"serializer:json" json:"images,omitempty"`
	Stock           int      `gorm:"default:0" json:"stock"`
	Description     string   `gorm:"type:text" json:"description,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// PublicVehicle 對外目錄不顯示批發價
func (v Vehicle) PublicVehicle() Vehicle {
	v.WholesalePrice = nil
	return v
}

// HasColor 是否提供此顏色（含主色）
func (v *Vehicle) HasColor(color string) bool {
	if v.Color == color {
		return true
	}
	for _, c := range v.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// Float 建立 *float64，用於 fixtures 與測試
func Float(f float64) *float64 {
	return &f
}

// Int 建立 *int
func Int(i int) *int {
	return &i
}
