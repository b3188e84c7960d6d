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

type PromotionService struct {
	repo repository.PromotionRepository
	now  func() time.Time
}

func NewPromotionService(repo repository.PromotionRepository) *PromotionService {
	return &PromotionService{repo: repo, now: time.Now}
}

func (s *PromotionService) today() string {
	return s.now().Format(validators.DateLayout)
}

// List status 為空時列出全部
func (s *PromotionService) List(ctx context.Context, status string) ([]models.Promotion, error) {
	switch status {
	case "", models.PromotionScheduled, models.PromotionActive, models.PromotionExpired:
	default:
		return nil, invalid("unknown promotion status %q", status)
	}
	promotions, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	return promotions, nil
}

func (s *PromotionService) Get(ctx context.Context, id string) (*models.Promotion, error) {
	promotion, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("promotion %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load promotion %s: %w", id, err)
	}
	return promotion, nil
}

// Create 狀態由起訖日推算，忽略輸入值
func (s *PromotionService) Create(ctx context.Context, p *models.Promotion) error {
	if err := checkPromotion(p); err != nil {
		return err
	}
	p.ID = uuid.NewString()
	p.Status = p.StatusOn(s.today())
	if err := s.repo.Create(ctx, p); err != nil {
		log.Printf("Failed to create promotion: %v", err)
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

func (s *PromotionService) Update(ctx context.Context, id string, p *models.Promotion) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := checkPromotion(p); err != nil {
		return err
	}
	p.ID = id
	p.CreatedAt = existing.CreatedAt
	p.Status = p.StatusOn(s.today())
	if err := s.repo.Update(ctx, p); err != nil {
		log.Printf("Failed to update promotion %s: %v", id, err)
		return fmt.Errorf("failed to update promotion %s: %w", id, err)
	}
	return nil
}

// RefreshStatuses 依今天日期重算所有優惠狀態
func (s *PromotionService) RefreshStatuses(ctx context.Context) (int64, error) {
	n, err := s.repo.RefreshStatuses(ctx, s.today())
	if err != nil {
		return 0, fmt.Errorf("failed to refresh promotion statuses: %w", err)
	}
	return n, nil
}

func checkPromotion(p *models.Promotion) error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return invalid("title is required")
	}
	if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
		return invalid("discountPercent must be between 0 and 100")
	}
	start, err := time.Parse(validators.DateLayout, p.StartDate)
	if err != nil {
		return invalid("startDate must be YYYY-MM-DD")
	}
	end, err := time.Parse(validators.DateLayout, p.EndDate)
	if err != nil {
		return invalid("endDate must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return invalid("endDate cannot be before startDate")
	}
	return nil
}
