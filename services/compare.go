package services

import (
	"context"
	"errors"
	"fmt"

	"evdealer/compare"
	"evdealer/models"
	"evdealer/store"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// CompareView 比較清單目前狀態與比較表
type CompareView struct {
	SessionID string           `json:"sessionId"`
	Vehicles  []models.Vehicle `json:"vehicles"`
	Table     compare.Table    `json:"table"`
	Full      bool             `json:"full"`
}

type CompareService struct {
	vehicles *VehicleService
	sessions store.CompareSessions
}

func NewCompareService(vehicles *VehicleService, sessions store.CompareSessions) *CompareService {
	return &CompareService{vehicles: vehicles, sessions: sessions}
}

// NewSession 建立空的比較清單
func (s *CompareService) NewSession(ctx context.Context) (*CompareView, error) {
	id := uuid.NewString()
	if err := s.sessions.Save(ctx, id, []string{}); err != nil {
		return nil, fmt.Errorf("failed to create compare session: %w", err)
	}
	return s.view(id, compare.Set{}), nil
}

// Get 不存在的 session 視為空清單
func (s *CompareService) Get(ctx context.Context, sessionID string) (*CompareView, error) {
	set, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(sessionID, set), nil
}

// Toggle 加入或移除車輛；清單已滿時回傳 compare.Full 且不變更
func (s *CompareService) Toggle(ctx context.Context, sessionID, vehicleID string) (*CompareView, compare.Outcome, error) {
	vehicle, err := s.vehicles.Get(ctx, vehicleID)
	if err != nil {
		return nil, 0, err
	}
	set, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}

	next, outcome := compare.Toggle(set, vehicle.PublicVehicle())
	if outcome != compare.Full {
		if err := s.sessions.Save(ctx, sessionID, next.IDs()); err != nil {
			return nil, 0, fmt.Errorf("failed to save compare session: %w", err)
		}
	}
	return s.view(sessionID, next), outcome, nil
}

func (s *CompareService) Clear(ctx context.Context, sessionID string) (*CompareView, error) {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to clear compare session: %w", err)
	}
	return s.view(sessionID, compare.Clear(nil)), nil
}

// load 依序還原車輛；已下架的車輛略過
func (s *CompareService) load(ctx context.Context, sessionID string) (compare.Set, error) {
	ids, err := s.sessions.Load(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return compare.Set{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load compare session: %w", err)
	}

	set := make(compare.Set, 0, len(ids))
	for _, id := range ids {
		v, err := s.vehicles.Get(ctx, id)
		if err != nil {
			log.WithError(err).WithField("vehicle_id", id).Warn("Dropping vehicle from compare session")
			continue
		}
		set = append(set, v.PublicVehicle())
	}
	return set, nil
}

func (s *CompareService) view(sessionID string, set compare.Set) *CompareView {
	vehicles := []models.Vehicle(set)
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	return &CompareView{
		SessionID: sessionID,
		Vehicles:  vehicles,
		Table:     compare.BuildTable(set),
		Full:      set.Full(),
	}
}
