package dao

import (
	"context"

	"Memora/models"

	"gorm.io/gorm"
)

type Likes struct {
	Repo[models.Like]
}

func NewLikes(db *gorm.DB) *Likes {
	return &Likes{Repo: NewRepo[models.Like](db)}
}

// Find 查询指定用户对指定回忆的点赞记录
func (d *Likes) Find(ctx context.Context, userID, memoryID uint64) (*models.Like, error) {
	return d.FindByWhere(ctx, "user_id = ? AND memory_id = ?", userID, memoryID)
}

func (d *Likes) IsLiked(ctx context.Context, userID, memoryID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND memory_id = ?", userID, memoryID)
}
