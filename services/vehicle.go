package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"evdealer/catalog"
	"evdealer/fixtures"
	"evdealer/models"
	"evdealer/repository"

	log "github.com/sirupsen/logrus"
)

const (
	MessageCatalogLoaded  = "Vehicles retrieved successfully"
	MessageOfflineCatalog = "Showing offline catalog"

	// MaxPageLimit 單頁筆數上限
	MaxPageLimit = 100
)

// VehicleListing 目錄查詢結果；Offline 表示使用內建資料
type VehicleListing struct {
	Page    catalog.Page
	Message string
	Offline bool
}

type VehicleService struct {
	repo         repository.VehicleRepository
	defaultLimit int
}

func NewVehicleService(repo repository.VehicleRepository, defaultLimit int) *VehicleService {
	return &VehicleService{repo: repo, defaultLimit: defaultLimit}
}

// all 讀取整份目錄；資料庫失敗時記錄錯誤並改用 fixtures
func (s *VehicleService) all(ctx context.Context) ([]models.Vehicle, bool) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load vehicles, falling back to offline catalog")
		return fixtures.Vehicles(), true
	}
	return vehicles, false
}

// List 篩選、排序、分頁；limit <= 0 使用預設值，超過 MaxPageLimit 則截斷
func (s *VehicleService) List(ctx context.Context, spec catalog.FilterSpec, page, limit int) VehicleListing {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	vehicles, offline := s.all(ctx)

	filtered := catalog.Apply(vehicles, spec)
	for i := range filtered {
		filtered[i] = filtered[i].PublicVehicle()
	}

	listing := VehicleListing{
		Page:    catalog.Paginate(filtered, page, limit),
		Message: MessageCatalogLoaded,
		Offline: offline,
	}
	if offline {
		listing.Message = MessageOfflineCatalog
	}
	return listing
}

// Get 資料庫錯誤時同樣改查 fixtures；找不到回傳 ErrNotFound
func (s *VehicleService) Get(ctx context.Context, id string) (*models.Vehicle, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}

	log.WithError(err).WithField("vehicle_id", id).Warn("Failed to load vehicle, checking offline catalog")
	for _, fv := range fixtures.Vehicles() {
		if fv.ID == id {
			return &fv, nil
		}
	}
	return nil, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
}

// Create 新增車輛（管理員）
func (s *VehicleService) Create(ctx context.Context, v *models.Vehicle) error {
	if err := checkVehicle(v); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, v); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("vehicle %s: %w", v.ID, ErrConflict)
		}
		log.Printf("Failed to create vehicle %s: %v", v.ID, err)
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	log.Printf("Vehicle %s created", v.ID)
	return nil
}

// Update 整筆取代既有車輛
func (s *VehicleService) Update(ctx context.Context, id string, v *models.Vehicle) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to load vehicle %s: %w", id, err)
	}
	v.ID = id
	v.CreatedAt = existing.CreatedAt
	if err := checkVehicle(v); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		log.Printf("Failed to update vehicle %s: %v", id, err)
		return fmt.Errorf("failed to update vehicle %s: %w", id, err)
	}
	return nil
}

func checkVehicle(v *models.Vehicle) error {
	if strings.TrimSpace(v.ID) == "" {
		return invalid("vehicle id is required")
	}
	if strings.TrimSpace(v.Name) == "" || strings.TrimSpace(v.Model) == "" {
		return invalid("vehicle name and model are required")
	}
	if v.Stock < 0 {
		return invalid("stock cannot be negative")
	}
	for name, f := range map[string]*float64{
		"price":           v.Price,
		"wholesalePrice":  v.WholesalePrice,
		"rangeKm":         v.RangeKm,
		"topSpeedKmh":     v.TopSpeedKmh,
		"motorPowerKw":    v.MotorPowerKw,
		"accelerationSec": v.AccelerationSec,
	} {
		if f != nil && *f < 0 {
			return invalid("%s cannot be negative", name)
		}
	}
	return nil
}
