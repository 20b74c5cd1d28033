package models

import "time"

// Comment 评论
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_comment_user_id" json:"user_id"`
	MemoryID  uint64    `gorm:"column:memory_id;not null;index:idx_comment_memory_created,priority:1" json:"memory_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_comment_memory_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c Comment) OwnerID() uint64 { return c.UserID }
