package models

import "time"

// Like 点赞记录
// 唯一键: user_id + memory_id
type Like struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_like_user_memory,priority:1" json:"user_id"`
	MemoryID  uint64    `gorm:"column:memory_id;not null;uniqueIndex:uk_like_user_memory,priority:2;index:idx_like_memory_id" json:"memory_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

func (l Like) OwnerID() uint64 { return l.UserID }
