package models

import (
	"time"

	"gorm.io/datatypes"
)

type Memory struct {
	ID             uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID         uint64         `gorm:"column:user_id;not null;index:idx_memory_user_id" json:"user_id"` // 作者
	Title          string         `gorm:"column:title;type:varchar(255);not null;default:''" json:"title"`
	Images         datatypes.JSON `gorm:"column:images" json:"images,omitempty"`
	LikeCounter    uint64         `gorm:"column:like_counter;not null;default:0" json:"like_counter"`
	CommentCounter uint64         `gorm:"column:comment_counter;not null;default:0" json:"comment_counter"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Memory) TableName() string {
	return "memories"
}

func (m Memory) OwnerID() uint64 { return m.UserID }
