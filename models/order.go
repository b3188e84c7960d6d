package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus 訂單狀態是否合法
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID         string  `gorm:"primaryKey;size:36" json:"id"`
	CustomerID string  `gorm:"size:36;not null;index" json:"customerId" binding:"required"`
	VehicleID  string  `gorm:"size:64;not null;index" json:"vehicleId" binding:"required"`
	DealerID   string  `gorm:"size:36;index" json:"dealerId,omitempty"`
	Color      string  `gorm:"size:50" json:"color,omitempty"`
	Amount     float64 `gorm:"type:decimal(14,2);not null" json:"amount" binding:"gte=0"`
	Deposit    float64 `gorm:"type:decimal(14,2);default:0" json:"deposit" binding:"gte=0"`
	OrderDate  string  `gorm:"size:10" json:"orderDate"`
	Status     string  `gorm:"size:20;not null" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Order) TableName() string {
	return "orders"
}
