package dao

import (
	"context"
	"fmt"

	"Memora/models"

	"gorm.io/gorm"
)

type Follows struct {
	Repo[models.Follow]
}

func NewFollows(db *gorm.DB) *Follows {
	return &Follows{Repo: NewRepo[models.Follow](db)}
}

// Find 查询关注关系，不存在返回 nil
func (d *Follows) Find(ctx context.Context, followerID, followingID uint64) (*models.Follow, error) {
	return d.FindByWhere(ctx, "follower_id = ? AND following_id = ?", followerID, followingID)
}

func (d *Follows) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND following_id = ?", followerID, followingID)
}

// Followers 粉丝列表，按关注时间倒序
func (d *Follows) Followers(ctx context.Context, userID uint64) ([]*models.User, error) {
	users := make([]*models.User, 0)
	err := d.Db.WithContext(ctx).
		Table("followers AS f").
		Select("u.*").
		Joins("JOIN users AS u ON u.id = f.follower_id").
		Where("f.following_id = ?", userID).
		Order("f.created_at DESC, f.id DESC").
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("dao.Follows.Followers: %w", err)
	}
	return users, nil
}

// Followings 关注列表，按关注时间倒序
func (d *Follows) Followings(ctx context.Context, userID uint64) ([]*models.User, error) {
	users := make([]*models.User, 0)
	err := d.Db.WithContext(ctx).
		Table("followers AS f").
		Select("u.*").
		Joins("JOIN users AS u ON u.id = f.following_id").
		Where("f.follower_id = ?", userID).
		Order("f.created_at DESC, f.id DESC").
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("dao.Follows.Followings: %w", err)
	}
	return users, nil
}
