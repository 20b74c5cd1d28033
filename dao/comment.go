package dao

import (
	"context"
	"fmt"

	"Memora/models"

	"gorm.io/gorm"
)

type Comments struct {
	Repo[models.Comment]
}

func NewComments(db *gorm.DB) *Comments {
	return &Comments{Repo: NewRepo[models.Comment](db)}
}

// ListByMemory 回忆下的评论，按时间正序
func (d *Comments) ListByMemory(ctx context.Context, memoryID uint64) ([]*models.Comment, error) {
	items, err := d.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("memory_id = ?", memoryID).Order("created_at ASC, id ASC")
	})
	if err != nil {
		return nil, fmt.Errorf("dao.Comments.ListByMemory: %w", err)
	}
	return items, nil
}
