package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"evdealer/models"
	"evdealer/store"
	"evdealer/utils"
	"evdealer/validators"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

// 預約紀錄檔的鍵
const (
	TestDriveBookingsKey = "testDriveBookings"
	DepositBookingsKey   = "depositBookings"
)

var bookingsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bookings_submitted_total",
	Help: "Booking submissions by kind and result",
}, []string{"kind", "result"})

// Phase 表單送出流程 idle -> submitting -> success|failure
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseSuccess    Phase = "success"
	PhaseFailure    Phase = "failure"
)

// SubmitState 兩個旗標描述送出狀態；Begin 之後才能 Succeed/Fail
type SubmitState struct {
	mu               sync.Mutex
	isSubmitting     bool
	showSuccessModal bool
	failed           bool
}

// Begin 已在送出中則回傳 false
func (s *SubmitState) Begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isSubmitting {
		return false
	}
	s.isSubmitting = true
	s.showSuccessModal = false
	s.failed = false
	return true
}

func (s *SubmitState) Succeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSubmitting = false
	s.showSuccessModal = true
}

func (s *SubmitState) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSubmitting = false
	s.failed = true
}

// CloseModal 關閉成功視窗回到 idle
func (s *SubmitState) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showSuccessModal = false
}

func (s *SubmitState) IsSubmitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSubmitting
}

func (s *SubmitState) ShowSuccessModal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showSuccessModal
}

func (s *SubmitState) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.isSubmitting:
		return PhaseSubmitting
	case s.showSuccessModal:
		return PhaseSuccess
	case s.failed:
		return PhaseFailure
	}
	return PhaseIdle
}

type BookingService struct {
	validator *validators.Validator
	log       store.BookingLog
	delay     time.Duration
	now       func() time.Time
}

func NewBookingService(v *validators.Validator, bookingLog store.BookingLog, delay time.Duration) *BookingService {
	return &BookingService{validator: v, log: bookingLog, delay: delay, now: time.Now}
}

// SubmitTestDrive 驗證後延遲再寫入紀錄檔；驗證失敗時 state 維持 idle
func (s *BookingService) SubmitTestDrive(ctx context.Context, form *validators.TestDriveForm, state *SubmitState) (*models.BookingRecord, error) {
	if errs := s.validator.ValidateTestDrive(form); !errs.Valid() {
		bookingsSubmitted.WithLabelValues(models.BookingTestDrive, "invalid").Inc()
		return nil, &ValidationError{Errors: errs}
	}

	record := &models.BookingRecord{
		Kind:           models.BookingTestDrive,
		FullName:       form.FullName,
		Phone:          form.Phone,
		Email:          form.Email,
		VehicleID:      form.VehicleID,
		Date:           form.PreferredDate,
		PickupLocation: form.PickupLocation,
		Note:           form.Note,
	}
	if form.PreferredTime != "" {
		record.Date = form.PreferredDate + " " + form.PreferredTime
	}
	pickup(record, form.PickupLocation, form.DealerID, form.HomeAddress)

	return s.submit(ctx, TestDriveBookingsKey, record, state)
}

// SubmitDeposit 身分證號只以遮罩形式留存
func (s *BookingService) SubmitDeposit(ctx context.Context, form *validators.DepositForm, state *SubmitState) (*models.BookingRecord, error) {
	if errs := s.validator.ValidateDeposit(form); !errs.Valid() {
		bookingsSubmitted.WithLabelValues(models.BookingDeposit, "invalid").Inc()
		return nil, &ValidationError{Errors: errs}
	}

	record := &models.BookingRecord{
		Kind:           models.BookingDeposit,
		FullName:       form.FullName,
		Phone:          form.Phone,
		Email:          form.Email,
		IdentityCard:   utils.MaskIdentity(form.IdentityCard),
		VehicleID:      form.VehicleID,
		Color:          form.Color,
		Date:           form.DeliveryDate,
		PickupLocation: form.PickupLocation,
		DepositAmount:  form.DepositAmount,
	}
	pickup(record, form.PickupLocation, form.DealerID, form.HomeAddress)

	return s.submit(ctx, DepositBookingsKey, record, state)
}

// pickup 只保留與取車地點相符的欄位
func pickup(record *models.BookingRecord, location, dealerID, homeAddress string) {
	if location == models.PickupDealer {
		record.DealerID = dealerID
		return
	}
	record.HomeAddress = homeAddress
}

func (s *BookingService) submit(ctx context.Context, key string, record *models.BookingRecord, state *SubmitState) (*models.BookingRecord, error) {
	if state == nil {
		state = &SubmitState{}
	}
	if !state.Begin() {
		return nil, fmt.Errorf("%w: submission already in progress", ErrConflict)
	}

	if err := s.wait(ctx); err != nil {
		state.Fail()
		bookingsSubmitted.WithLabelValues(record.Kind, "failed").Inc()
		return nil, err
	}

	record.ID = uuid.NewString()
	record.SubmittedAt = s.now().UTC()
	if err := s.log.Append(ctx, key, record); err != nil {
		state.Fail()
		bookingsSubmitted.WithLabelValues(record.Kind, "failed").Inc()
		log.WithError(err).WithField("key", key).Error("Failed to append booking")
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	state.Succeed()
	bookingsSubmitted.WithLabelValues(record.Kind, "success").Inc()
	log.WithFields(log.Fields{"kind": record.Kind, "booking_id": record.ID}).Info("Booking submitted")
	return record, nil
}

// wait 模擬後端處理時間，可被 ctx 取消
func (s *BookingService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// List 讀回某類預約的全部紀錄
func (s *BookingService) List(ctx context.Context, kind string) ([]models.BookingRecord, error) {
	var key string
	switch kind {
	case models.BookingTestDrive, "test-drive":
		key = TestDriveBookingsKey
	case models.BookingDeposit:
		key = DepositBookingsKey
	default:
		return nil, invalid("unknown booking kind %q", kind)
	}

	raw, err := s.log.List(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	records := make([]models.BookingRecord, 0, len(raw))
	for _, r := range raw {
		var rec models.BookingRecord
		if err := json.Unmarshal(r, &rec); err != nil {
			log.WithError(err).WithField("key", key).Warn("Skipping malformed booking record")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
