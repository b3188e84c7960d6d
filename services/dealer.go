package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"evdealer/models"
	"evdealer/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type DealerService struct {
	repo repository.DealerRepository
}

func NewDealerService(repo repository.DealerRepository) *DealerService {
	return &DealerService{repo: repo}
}

func (s *DealerService) List(ctx context.Context) ([]models.Dealer, error) {
	dealers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dealers: %w", err)
	}
	return dealers, nil
}

func (s *DealerService) Get(ctx context.Context, id string) (*models.Dealer, error) {
	dealer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("dealer %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load dealer %s: %w", id, err)
	}
	return dealer, nil
}

// Create 未指定 ID 時產生 uuid
func (s *DealerService) Create(ctx context.Context, dealer *models.Dealer) error {
	if err := checkDealer(dealer); err != nil {
		return err
	}
	if strings.TrimSpace(dealer.ID) == "" {
		dealer.ID = uuid.NewString()
	}
	if err := s.repo.Create(ctx, dealer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("dealer %s: %w", dealer.ID, ErrConflict)
		}
		log.Printf("Failed to create dealer: %v", err)
		return fmt.Errorf("failed to create dealer: %w", err)
	}
	return nil
}

func (s *DealerService) Update(ctx context.Context, id string, dealer *models.Dealer) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := checkDealer(dealer); err != nil {
		return err
	}
	dealer.ID = id
	dealer.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, dealer); err != nil {
		log.Printf("Failed to update dealer %s: %v", id, err)
		return fmt.Errorf("failed to update dealer %s: %w", id, err)
	}
	return nil
}

func checkDealer(d *models.Dealer) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Address = strings.TrimSpace(d.Address)
	if d.Name == "" || d.Address == "" {
		return invalid("dealer name and address are required")
	}
	return nil
}
