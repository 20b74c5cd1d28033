package models

import "time"

// Follow 关注关系
// 唯一键: follower_id + following_id
type Follow struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	FollowerID  uint64    `gorm:"column:follower_id;not null;uniqueIndex:uk_follow_follower_following,priority:1" json:"follower_id"`                            // 关注人
	FollowingID uint64    `gorm:"column:following_id;not null;uniqueIndex:uk_follow_follower_following,priority:2;index:idx_follow_following_id" json:"following_id"` // 被关注人
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Follow) TableName() string {
	return "followers"
}
