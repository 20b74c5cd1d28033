package service

import (
	"context"

	"Memora/dao"
	"Memora/models"
	"Memora/pkg/database"
	"Memora/pkg/metrics"
	"Memora/pkg/response"
	"Memora/pkg/snowflake"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	// Follow 关注用户，重复关注返回 Conflict
	Follow(ctx context.Context, followerID, targetID uint64) (*models.Follow, error)
	// Unfollow 取消关注，未关注返回 Conflict
	Unfollow(ctx context.Context, followerID, targetID uint64) error
	IsFollowing(ctx context.Context, followerID, targetID uint64) (bool, error)
	Followers(ctx context.Context, userID uint64) ([]*models.User, error)
	Followings(ctx context.Context, userID uint64) ([]*models.User, error)
}

type FollowService struct {
	Store    *dao.Store
	Notifier *Notifier
}

func (s *FollowService) Follow(ctx context.Context, followerID, targetID uint64) (row *models.Follow, err error) {
	defer func() { metrics.Observe("follow", err) }()

	target, err := s.Store.Users.FindById(ctx, targetID)
	if err != nil {
		return nil, storageErr("follow", "load target", err)
	}
	if target == nil {
		return nil, response.NotFound("user not found")
	}

	existing, err := s.Store.Follows.Find(ctx, followerID, targetID)
	if err != nil {
		return nil, storageErr("follow", "load follow", err)
	}
	if existing != nil {
		return nil, response.Conflict("user is already following the followed user")
	}

	row = &models.Follow{
		ID:          snowflake.GenID(),
		FollowerID:  followerID,
		FollowingID: targetID,
		CreatedAt:   database.Now(),
	}
	if err := s.Store.Follows.Create(ctx, row); err != nil {
		if dao.IsDuplicateKey(err) {
			return nil, response.Conflict("user is already following the followed user")
		}
		return nil, storageErr("follow", "create follow", err)
	}

	if err := s.Store.Users.Incr(ctx, targetID, dao.ColFollowersCount); err != nil {
		return nil, storageErr("follow", "incr followers", err)
	}
	if err := s.Store.Users.Incr(ctx, followerID, dao.ColFollowingsCount); err != nil {
		return nil, storageErr("follow", "incr followings", err)
	}

	notice := &models.Notification{
		ID:           snowflake.GenID(),
		RecipientID:  targetID,
		InteractorID: followerID,
		Type:         models.NotificationNewFollower,
		CreatedAt:    row.CreatedAt,
	}
	if err := s.Notifier.Notify(ctx, s.Store, notice); err != nil {
		return nil, storageErr("follow", "notify", err)
	}

	s.Notifier.Publish(ctx, s.Store, notice)
	return row, nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uint64) (err error) {
	defer func() { metrics.Observe("unfollow", err) }()

	target, err := s.Store.Users.FindById(ctx, targetID)
	if err != nil {
		return storageErr("unfollow", "load target", err)
	}
	if target == nil {
		return response.NotFound("user not found")
	}

	row, err := s.Store.Follows.Find(ctx, followerID, targetID)
	if err != nil {
		return storageErr("unfollow", "load follow", err)
	}
	if row == nil {
		return response.Conflict("user is not following the followed user")
	}

	rows, err := s.Store.Follows.Delete(ctx, "id = ?", row.ID)
	if err != nil {
		return storageErr("unfollow", "delete follow", err)
	}
	// 并发取消时只有一个请求继续扣减
	if rows == 0 {
		return response.Conflict("user is not following the followed user")
	}

	if _, err := s.Store.Users.Decr(ctx, targetID, dao.ColFollowersCount); err != nil {
		return storageErr("unfollow", "decr followers", err)
	}
	if _, err := s.Store.Users.Decr(ctx, followerID, dao.ColFollowingsCount); err != nil {
		return storageErr("unfollow", "decr followings", err)
	}

	if err := s.Notifier.RetractFollow(ctx, s.Store, targetID, followerID); err != nil {
		return storageErr("unfollow", "retract notice", err)
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID uint64) (bool, error) {
	ok, err := s.Store.Follows.IsFollowing(ctx, followerID, targetID)
	if err != nil {
		return false, response.Storage(err)
	}
	return ok, nil
}

func (s *FollowService) Followers(ctx context.Context, userID uint64) ([]*models.User, error) {
	if err := s.mustExist(ctx, userID); err != nil {
		return nil, err
	}
	users, err := s.Store.Follows.Followers(ctx, userID)
	if err != nil {
		return nil, response.Storage(err)
	}
	return users, nil
}

func (s *FollowService) Followings(ctx context.Context, userID uint64) ([]*models.User, error) {
	if err := s.mustExist(ctx, userID); err != nil {
		return nil, err
	}
	users, err := s.Store.Follows.Followings(ctx, userID)
	if err != nil {
		return nil, response.Storage(err)
	}
	return users, nil
}

func (s *FollowService) mustExist(ctx context.Context, userID uint64) error {
	ok, err := s.Store.Users.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return response.Storage(err)
	}
	if !ok {
		return response.NotFound("user not found")
	}
	return nil
}
