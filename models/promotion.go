package models

import "time"

const (
	PromotionScheduled = "scheduled"
	PromotionActive    = "active"
	PromotionExpired   = "expired"
)

// Promotion 日期為 YYYY-MM-DD 字串
type Promotion struct {
	ID              string  `gorm:"primaryKey;size:36" json:"id"`
	Title           string  `gorm:"size:150;not null" json:"title" binding:"required"`
	Description     string  `gorm:"type:text" json:"description,omitempty"`
	DiscountPercent float64 `gorm:"type:decimal(5,2)" json:"discountPercent" binding:"gte=0,lte=100"`
	VehicleID       string  `gorm:"size:64;index" json:"vehicleId,omitempty"`
	StartDate       string  `gorm:"size:10;not null" json:"startDate" binding:"required"`
	EndDate         string  `gorm:"size:10;not null" json:"endDate" binding:"required"`
	Status          string  `gorm:"size:20;index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Promotion) TableName() string {
	return "promotions"
}

// StatusOn 依日期推算狀態；日期字串可直接字典序比較
func (p *Promotion) StatusOn(today string) string {
	switch {
	case today < p.StartDate:
		return PromotionScheduled
	case today > p.EndDate:
		return PromotionExpired
	default:
		return PromotionActive
	}
}
