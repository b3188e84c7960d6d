package models

import "time"

type Dealer struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name" binding:"required"`
	Address string `gorm:"size:255" json:"address" binding:"required"`
	City    string `gorm:"size:50;index" json:"city,omitempty"`
	Phone   string `gorm:"size:20" json:"phone,omitempty"`
	Email   string `gorm:"size:100" json:"email,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Dealer) TableName() string {
	return "dealers"
}
