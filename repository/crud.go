package repository

import (
	"context"

	"gorm.io/gorm"
)

// crud 各資料表共用的基本操作
type crud[T any] struct {
	db *gorm.DB
}

func (r crud[T]) list(ctx context.Context, order string, conds ...interface{}) ([]T, error) {
	var items []T
	q := r.db.WithContext(ctx)
	if order != "" {
		q = q.Order(order)
	}
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r crud[T]) get(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r crud[T]) create(ctx context.Context, item *T) error {
	return translate(r.db.WithContext(ctx).Create(item).Error)
}

// save 整筆覆寫
func (r crud[T]) save(ctx context.Context, item *T) error {
	return translate(r.db.WithContext(ctx).Save(item).Error)
}
