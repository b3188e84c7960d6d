package repository

import (
	"context"
	"fmt"

	"evdealer/models"

	"gorm.io/gorm"
)

// --- vehicles ---

type vehicleRepository struct{ crud[models.Vehicle] }

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{crud[models.Vehicle]{db}}
}

func (r *vehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	return r.list(ctx, "created_at asc")
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	return r.get(ctx, id)
}

func (r *vehicleRepository) Create(ctx context.Context, v *models.Vehicle) error {
	return r.create(ctx, v)
}

func (r *vehicleRepository) Update(ctx context.Context, v *models.Vehicle) error {
	return r.save(ctx, v)
}

// --- customers ---

type customerRepository struct{ crud[models.Customer] }

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{crud[models.Customer]{db}}
}

func (r *customerRepository) Search(ctx context.Context, q, salesStaffID string) ([]models.Customer, error) {
	query := r.db.WithContext(ctx).Order("created_at desc")
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}
	if salesStaffID != "" {
		query = query.Where("sales_staff_id = ?", salesStaffID)
	}
	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		return nil, translate(err)
	}
	return customers, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return r.get(ctx, id)
}

func (r *customerRepository) Create(ctx context.Context, c *models.Customer) error {
	return r.create(ctx, c)
}

func (r *customerRepository) Update(ctx context.Context, c *models.Customer) error {
	return r.save(ctx, c)
}

// --- payments ---

type paymentRepository struct{ crud[models.Payment] }

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{crud[models.Payment]{db}}
}

func (r *paymentRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.Payment, error) {
	return r.list(ctx, "paid_at asc", "customer_id = ?", customerID)
}

func (r *paymentRepository) Create(ctx context.Context, p *models.Payment) error {
	return r.create(ctx, p)
}

// --- orders ---

type orderRepository struct{ crud[models.Order] }

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{crud[models.Order]{db}}
}

func (r *orderRepository) List(ctx context.Context, customerID string) ([]models.Order, error) {
	if customerID == "" {
		return r.list(ctx, "created_at desc")
	}
	return r.list(ctx, "created_at desc", "customer_id = ?", customerID)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return r.get(ctx, id)
}

func (r *orderRepository) CreateWithPayment(ctx context.Context, order *models.Order, payment *models.Payment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if payment != nil {
			if err := tx.Create(payment).Error; err != nil {
				return fmt.Errorf("create deposit payment: %w", err)
			}
		}
		return nil
	})
	return translate(err)
}

func (r *orderRepository) Update(ctx context.Context, o *models.Order) error {
	return r.save(ctx, o)
}

// --- dealers ---

type dealerRepository struct{ crud[models.Dealer] }

func NewDealerRepository(db *gorm.DB) DealerRepository {
	return &dealerRepository{crud[models.Dealer]{db}}
}

func (r *dealerRepository) List(ctx context.Context) ([]models.Dealer, error) {
	return r.list(ctx, "name asc")
}

func (r *dealerRepository) GetByID(ctx context.Context, id string) (*models.Dealer, error) {
	return r.get(ctx, id)
}

func (r *dealerRepository) Create(ctx context.Context, d *models.Dealer) error {
	return r.create(ctx, d)
}

func (r *dealerRepository) Update(ctx context.Context, d *models.Dealer) error {
	return r.save(ctx, d)
}

// --- promotions ---

type promotionRepository struct{ crud[models.Promotion] }

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{crud[models.Promotion]{db}}
}

func (r *promotionRepository) List(ctx context.Context, status string) ([]models.Promotion, error) {
	if status == "" {
		return r.list(ctx, "start_date desc")
	}
	return r.list(ctx, "start_date desc", "status = ?", status)
}

func (r *promotionRepository) GetByID(ctx context.Context, id string) (*models.Promotion, error) {
	return r.get(ctx, id)
}

func (r *promotionRepository) Create(ctx context.Context, p *models.Promotion) error {
	return r.create(ctx, p)
}

func (r *promotionRepository) Update(ctx context.Context, p *models.Promotion) error {
	return r.save(ctx, p)
}

func (r *promotionRepository) RefreshStatuses(ctx context.Context, today string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := []struct {
			status string
			where  string
		}{
			{models.PromotionScheduled, "start_date > ?"},
			{models.PromotionExpired, "end_date < ?"},
			{models.PromotionActive, "start_date <= ? AND end_date >= ?"},
		}
		for _, u := range updates {
			args := []interface{}{today}
			if u.status == models.PromotionActive {
				args = append(args, today)
			}
			res := tx.Model(&models.Promotion{}).
				Where(u.where, args...).
				Where("status <> ?", u.status).
				Update("status", u.status)
			if res.Error != nil {
				return res.Error
			}
			total += res.RowsAffected
		}
		return nil
	})
	return total, translate(err)
}

// --- staff ---

type staffRepository struct{ crud[models.Staff] }

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{crud[models.Staff]{db}}
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	return r.get(ctx, id)
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var s models.Staff
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *staffRepository) FindByRole(ctx context.Context, role string) (*models.Staff, error) {
	var s models.Staff
	if err := r.db.WithContext(ctx).Where("role = ?", role).First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *staffRepository) Create(ctx context.Context, s *models.Staff) error {
	return r.create(ctx, s)
}
