package models

import "time"

// User 用户，计数字段只通过增减维护
type User struct {
	ID                uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username          string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_user_username" json:"username"`
	Avatar            string    `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	FollowersCount    uint64    `gorm:"column:followers_count;not null;default:0" json:"followers_count"`
	FollowingsCount   uint64    `gorm:"column:followings_count;not null;default:0" json:"followings_count"`
	NotificationCount uint64    `gorm:"column:notification_count;not null;default:0" json:"notification_count"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u User) OwnerID() uint64 { return u.ID }

// UserBrief 推送和列表里展示的用户信息
type UserBrief struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func (u User) Brief() UserBrief {
	return UserBrief{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
}
