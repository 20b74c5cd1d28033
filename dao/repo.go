package dao

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repo 单表通用操作，嵌入到各实体 DAO 中
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).Model(new(T))
}

// FindById 不存在时返回 nil, nil
func (r Repo[T]) FindById(ctx context.Context, id uint64) (*T, error) {
	return r.FindByWhere(ctx, "id = ?", id)
}

// FindByWhere 不存在时返回 nil, nil
func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	res := r.Db.WithContext(ctx).Where(where, args...).Limit(1).Find(&item)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r Repo[T]) FindAll(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*T, error) {
	items := make([]*T, 0)
	if err := r.Model(ctx).Scopes(scopes...).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Model(ctx).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

// UpdateById 返回受影响行数
func (r Repo[T]) UpdateById(ctx context.Context, id uint64, data map[string]any) (int64, error) {
	res := r.Model(ctx).Where("id = ?", id).Updates(data)
	return res.RowsAffected, res.Error
}

// Delete 按条件删除，返回受影响行数
func (r Repo[T]) Delete(ctx context.Context, where string, args ...any) (int64, error) {
	res := r.Db.WithContext(ctx).Where(where, args...).Delete(new(T))
	return res.RowsAffected, res.Error
}

// Incr 计数 +1
func (r Repo[T]) Incr(ctx context.Context, id uint64, column string) error {
	col := clause.Column{Name: column}
	err := r.Model(ctx).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr("? + 1", col)).Error
	if err != nil {
		return fmt.Errorf("incr %s: %w", column, err)
	}
	return nil
}

// Decr 计数 -1，最小为 0；返回是否真的减少
func (r Repo[T]) Decr(ctx context.Context, id uint64, column string) (bool, error) {
	n, err := r.DecrBy(ctx, id, column, 1)
	return n > 0, err
}

// DecrBy 计数减 n，最小为 0
func (r Repo[T]) DecrBy(ctx context.Context, id uint64, column string, n int64) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	col := clause.Column{Name: column}
	res := r.Model(ctx).
		Where("id = ?", id).
		Where("? > 0", col).
		UpdateColumn(column, gorm.Expr("CASE WHEN ? > ? THEN ? - ? ELSE 0 END", col, n, col, n))
	if res.Error != nil {
		return 0, fmt.Errorf("decr %s: %w", column, res.Error)
	}
	return res.RowsAffected, nil
}
