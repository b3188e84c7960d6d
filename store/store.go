// Package store 預約紀錄與比較清單的鍵值儲存
package store

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrSessionNotFound 比較清單不存在或已過期
var ErrSessionNotFound = errors.New("compare session not found")

// BookingLog 只能追加的預約紀錄
type BookingLog interface {
	Append(ctx context.Context, key string, record interface{}) error
	List(ctx context.Context, key string) ([]json.RawMessage, error)
}

// CompareSessions 以 session ID 保存比較清單中的車輛 ID（有序）
type CompareSessions interface {
	Load(ctx context.Context, sessionID string) ([]string, error)
	Save(ctx context.Context, sessionID string, vehicleIDs []string) error
	Delete(ctx context.Context, sessionID string) error
}
