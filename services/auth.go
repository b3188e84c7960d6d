package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"evdealer/models"
	"evdealer/repository"
	"evdealer/utils"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// LoginResult 登入成功回傳的 token 與使用者資料
type LoginResult struct {
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expiresAt"`
	Staff     models.StaffResponse `json:"staff"`
}

type AuthService struct {
	staff  repository.StaffRepository
	tokens *utils.TokenIssuer
}

func NewAuthService(staff repository.StaffRepository, tokens *utils.TokenIssuer) *AuthService {
	return &AuthService{staff: staff, tokens: tokens}
}

// Login 帳號不存在與密碼錯誤回傳同一個錯誤
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	staff, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("Staff with email %s not found", email)
			return nil, ErrInvalidCredentials
		}
		log.Printf("Failed to login staff: %v", err)
		return nil, fmt.Errorf("failed to login staff: %w", err)
	}
	if !utils.CheckPasswordHash(password, staff.Password) {
		log.Printf("Invalid password for email %s", email)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(staff.ID, staff.Role)
	if err != nil {
		return nil, err
	}
	log.Printf("Staff %s logged in successfully", staff.ID)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Staff: staff.ToResponse()}, nil
}

func (s *AuthService) Me(ctx context.Context, staffID string) (*models.StaffResponse, error) {
	staff, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("staff %s: %w", staffID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load staff %s: %w", staffID, err)
	}
	resp := staff.ToResponse()
	return &resp, nil
}

// EnsureAdmin 沒有任何管理員時以設定的帳密建立一位
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	admin, err := s.staff.FindByRole(ctx, models.RoleAdmin)
	if err == nil {
		log.Printf("Admin already exists: email=%s", admin.Email)
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if email == "" || password == "" {
		return invalid("ADMIN_EMAIL and ADMIN_PASSWORD are required to create the first admin")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	staff := &models.Staff{
		ID:       uuid.NewString(),
		Name:     "Administrator",
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	log.Printf("Default admin created: email=%s", staff.Email)
	return nil
}
