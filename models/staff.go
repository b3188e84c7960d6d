package models

import "time"

const (
	RoleAdmin = "admin"
	RoleSales = "sales"
)

// Staff 後台使用者（管理員、業務）
type Staff struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Name     string `gorm:"size:50;not null" json:"name"`
	Email    string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
	Role     string `gorm:"size:20;not null" json:"role"`
	DealerID string `gorm:"size:36" json:"dealerId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Staff) TableName() string {
	return "staff"
}

type StaffResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	DealerID string `json:"dealerId,omitempty"`
}

func (s *Staff) ToResponse() StaffResponse {
	return StaffResponse{
		ID:       s.ID,
		Name:     s.Name,
		Email:    s.Email,
		Role:     s.Role,
		DealerID: s.DealerID,
	}
}
