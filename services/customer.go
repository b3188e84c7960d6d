package services

import (
	"context"
	"errors"
	"fmt"

	"evdealer/models"
	"evdealer/repository"
	"evdealer/utils"
	"evdealer/validators"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type CustomerService struct {
	customers repository.CustomerRepository
	payments  repository.PaymentRepository
	validator *validators.Validator
	cipher    *utils.FieldCipher
}

func NewCustomerService(customers repository.CustomerRepository, payments repository.PaymentRepository,
	v *validators.Validator, cipher *utils.FieldCipher) *CustomerService {
	return &CustomerService{customers: customers, payments: payments, validator: v, cipher: cipher}
}

// List q 比對姓名、email、電話
func (s *CustomerService) List(ctx context.Context, q string) ([]models.Customer, error) {
	return s.search(ctx, q, "")
}

// ListMine 只列出由該業務負責的客戶
func (s *CustomerService) ListMine(ctx context.Context, q, staffID string) ([]models.Customer, error) {
	return s.search(ctx, q, staffID)
}

func (s *CustomerService) search(ctx context.Context, q, staffID string) ([]models.Customer, error) {
	customers, err := s.customers.Search(ctx, q, staffID)
	if err != nil {
		log.Printf("Failed to search customers: %v", err)
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	for i := range customers {
		s.reveal(&customers[i])
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("customer %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load customer %s: %w", id, err)
	}
	s.reveal(customer)
	return customer, nil
}

// Create 指派 uuid 與負責業務，身分證號加密儲存
func (s *CustomerService) Create(ctx context.Context, form *validators.CustomerForm, staffID string) (*models.Customer, error) {
	if errs := s.validator.ValidateCustomer(form); !errs.Valid() {
		return nil, &ValidationError{Errors: errs}
	}

	customer := &models.Customer{
		ID:           uuid.NewString(),
		SalesStaffID: staffID,
	}
	if err := s.fill(customer, form); err != nil {
		return nil, err
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("customer with this email or phone: %w", ErrConflict)
		}
		log.Printf("Failed to create customer: %v", err)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	log.Printf("Customer %s created by staff %s", customer.ID, staffID)
	customer.IdentityCard = form.IdentityCard
	return customer, nil
}

// Update 以表單內容整筆取代，保留負責業務與建立時間
func (s *CustomerService) Update(ctx context.Context, id string, form *validators.CustomerForm) (*models.Customer, error) {
	if errs := s.validator.ValidateCustomer(form); !errs.Valid() {
		return nil, &ValidationError{Errors: errs}
	}

	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("customer %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load customer %s: %w", id, err)
	}
	if err := s.fill(customer, form); err != nil {
		return nil, err
	}
	if err := s.customers.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("customer with this email or phone: %w", ErrConflict)
		}
		log.Printf("Failed to update customer %s: %v", id, err)
		return nil, fmt.Errorf("failed to update customer %s: %w", id, err)
	}

	customer.IdentityCard = form.IdentityCard
	return customer, nil
}

// Payments 客戶不存在時回傳 ErrNotFound
func (s *CustomerService) Payments(ctx context.Context, customerID string) ([]models.Payment, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("customer %s: %w", customerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load customer %s: %w", customerID, err)
	}
	payments, err := s.payments.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (s *CustomerService) fill(c *models.Customer, form *validators.CustomerForm) error {
	encrypted, err := s.cipher.Encrypt(form.IdentityCard)
	if err != nil {
		return fmt.Errorf("failed to encrypt identity card: %w", err)
	}
	c.FullName = form.FullName
	c.Phone = form.Phone
	c.Email = form.Email
	c.IdentityCard = encrypted
	c.Address = form.Address
	c.DateOfBirth = form.DateOfBirth
	c.Note = form.Note
	return nil
}

// reveal 解密失敗時清空欄位，不讓整筆查詢失敗
func (s *CustomerService) reveal(c *models.Customer) {
	plain, err := s.cipher.Decrypt(c.IdentityCard)
	if err != nil {
		log.WithError(err).WithField("customer_id", c.ID).Warn("Failed to decrypt identity card")
		c.IdentityCard = ""
		return
	}
	c.IdentityCard = plain
}
