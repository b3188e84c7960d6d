package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"evdealer/models"
	"evdealer/repository"
	"evdealer/validators"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	PaymentMethodDeposit = "deposit"
	PaymentStatusPaid    = "paid"
)

// OrderRequest 建立/編輯訂單的輸入
type OrderRequest struct {
	CustomerID string  `json:"customerId" binding:"required"`
	VehicleID  string  `json:"vehicleId" binding:"required"`
	DealerID   string  `json:"dealerId"`
	Color      string  `json:"color"`
	Amount     float64 `json:"amount" binding:"gte=0"`
	Deposit    float64 `json:"deposit" binding:"gte=0"`
	OrderDate  string  `json:"orderDate"`
	Status     string  `json:"status"`
}

type OrderService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	now       func() time.Time
}

func NewOrderService(orders repository.OrderRepository, customers repository.CustomerRepository) *OrderService {
	return &OrderService{orders: orders, customers: customers, now: time.Now}
}

func (s *OrderService) List(ctx context.Context, customerID string) ([]models.Order, error) {
	orders, err := s.orders.List(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load order %s: %w", id, err)
	}
	return order, nil
}

// Create 有訂金時同一交易內寫入付款紀錄
func (s *OrderService) Create(ctx context.Context, req *OrderRequest) (*models.Order, error) {
	if err := s.check(ctx, req); err != nil {
		return nil, err
	}

	order := &models.Order{ID: uuid.NewString()}
	s.fill(order, req)

	var payment *models.Payment
	if order.Deposit > 0 {
		payment = &models.Payment{
			ID:         uuid.NewString(),
			CustomerID: order.CustomerID,
			OrderID:    order.ID,
			Amount:     order.Deposit,
			Method:     PaymentMethodDeposit,
			Status:     PaymentStatusPaid,
			PaidAt:     s.now().Format(time.RFC3339),
		}
	}

	if err := s.orders.CreateWithPayment(ctx, order, payment); err != nil {
		log.Printf("Failed to create order: %v", err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	log.Printf("Order %s created for customer %s", order.ID, order.CustomerID)
	return order, nil
}

// Update 整筆取代，訂單編號與建立時間不變
func (s *OrderService) Update(ctx context.Context, id string, req *OrderRequest) (*models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.check(ctx, req); err != nil {
		return nil, err
	}
	s.fill(order, req)
	if err := s.orders.Update(ctx, order); err != nil {
		log.Printf("Failed to update order %s: %v", id, err)
		return nil, fmt.Errorf("failed to update order %s: %w", id, err)
	}
	return order, nil
}

func (s *OrderService) check(ctx context.Context, req *OrderRequest) error {
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if req.Status == "" {
		req.Status = models.OrderStatusPending
	}
	if !models.ValidOrderStatus(req.Status) {
		return invalid("unknown order status %q", req.Status)
	}
	if req.Deposit > req.Amount {
		return invalid("deposit cannot exceed order amount")
	}
	if req.OrderDate != "" {
		if _, ok := validators.ParseDate(req.OrderDate, time.Local); !ok {
			return invalid("orderDate must be YYYY-MM-DD")
		}
	}
	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return invalid("customer %s does not exist", req.CustomerID)
		}
		return fmt.Errorf("failed to load customer %s: %w", req.CustomerID, err)
	}
	return nil
}

func (s *OrderService) fill(o *models.Order, req *OrderRequest) {
	o.CustomerID = req.CustomerID
	o.VehicleID = req.VehicleID
	o.DealerID = req.DealerID
	o.Color = req.Color
	o.Amount = req.Amount
	o.Deposit = req.Deposit
	o.OrderDate = req.OrderDate
	if o.OrderDate == "" {
		o.OrderDate = s.now().Format(validators.DateLayout)
	}
	o.Status = req.Status
}
