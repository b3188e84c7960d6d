// Package repository 資料存取層：介面與 GORM 實作
package repository

import (
	"context"

	"evdealer/models"
)

type VehicleRepository interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
	Create(ctx context.Context, vehicle *models.Vehicle) error
	Update(ctx context.Context, vehicle *models.Vehicle) error
}

type CustomerRepository interface {
	// Search q 為空時回傳全部；salesStaffID 非空時只回傳該業務的客戶
	Search(ctx context.Context, q, salesStaffID string) ([]models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
}

type PaymentRepository interface {
	ListByCustomer(ctx context.Context, customerID string) ([]models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) error
}

type OrderRepository interface {
	List(ctx context.Context, customerID string) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	// CreateWithPayment 同一交易內建立訂單與訂金付款（payment 可為 nil）
	CreateWithPayment(ctx context.Context, order *models.Order, payment *models.Payment) error
	Update(ctx context.Context, order *models.Order) error
}

type DealerRepository interface {
	List(ctx context.Context) ([]models.Dealer, error)
	GetByID(ctx context.Context, id string) (*models.Dealer, error)
	Create(ctx context.Context, dealer *models.Dealer) error
	Update(ctx context.Context, dealer *models.Dealer) error
}

type PromotionRepository interface {
	List(ctx context.Context, status string) ([]models.Promotion, error)
	GetByID(ctx context.Context, id string) (*models.Promotion, error)
	Create(ctx context.Context, promotion *models.Promotion) error
	Update(ctx context.Context, promotion *models.Promotion) error
	// RefreshStatuses 依 today（YYYY-MM-DD）更新狀態，回傳異動筆數
	RefreshStatuses(ctx context.Context, today string) (int64, error)
}

type StaffRepository interface {
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	FindByRole(ctx context.Context, role string) (*models.Staff, error)
	Create(ctx context.Context, staff *models.Staff) error
}
