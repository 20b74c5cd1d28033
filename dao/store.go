package dao

import (
	"context"

	"gorm.io/gorm"
)

// Store 聚合各实体 DAO，Transaction 内拿到的是绑定到同一事务的 Store
type Store struct {
	db *gorm.DB

	Users         *Users
	Memories      *Memories
	Follows       *Follows
	Likes         *Likes
	Comments      *Comments
	Notifications *Notifications
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Users:         NewUsers(db),
		Memories:      NewMemories(db),
		Follows:       NewFollows(db),
		Likes:         NewLikes(db),
		Comments:      NewComments(db),
		Notifications: NewNotifications(db),
	}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction fn 返回错误或 panic 时回滚，否则提交
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
