package services

import (
	"errors"
	"fmt"

	"evdealer/repository"
	"evdealer/validators"
)

var (
	ErrNotFound           = repository.ErrNotFound
	ErrConflict           = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError 表單欄位錯誤，Errors 為扁平的欄位對訊息表
type ValidationError struct {
	Errors validators.ErrorMap
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Errors))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
