package models

import "time"

type Customer struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	FullName     string `gorm:"size:100;not null;index" json:"fullName" binding:"required"`
	Phone        string `gorm:"size:20;not null;uniqueIndex" json:"phone" binding:"required"`
	Email        string `gorm:"size:100;not null;uniqueIndex" json:"email" binding:"required"`
	IdentityCard string `gorm:"size:255" json:"identityCard,omitempty"`
	Address      string `gorm:"size:255" json:"address,omitempty"`
	DateOfBirth  string `gorm:"size:10" json:"dateOfBirth,omitempty"`
	SalesStaffID string `gorm:"size:36;index" json:"salesStaffId,omitempty"`
	Note         string `gorm:"type:text" json:"note,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Customer) TableName() string {
	return "customers"
}

// Payment 客戶付款紀錄（訂金、尾款）
type Payment struct {
	ID         string  `gorm:"primaryKey;size:36" json:"id"`
	CustomerID string  `gorm:"size:36;not null;index" json:"customerId"`
	OrderID    string  `gorm:"size:36;index" json:"orderId,omitempty"`
	Amount     float64 `gorm:"type:decimal(14,2);not null" json:"amount"`
	Method     string  `gorm:"size:20" json:"method"`
	Status     string  `gorm:"size:20" json:"status"`
	PaidAt     string  `gorm:"size:25" json:"paidAt"`
}

func (Payment) TableName() string {
	return "payments"
}
