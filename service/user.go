package service

import (
	"context"

	"Memora/dao"
	"Memora/models"
	"Memora/pkg/response"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	// Profile 用户资料，包含关注数、粉丝数和未读通知数
	Profile(ctx context.Context, userID uint64) (*models.User, error)
}

type UserService struct {
	Store *dao.Store
}

func (s *UserService) Profile(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.Store.Users.FindById(ctx, userID)
	if err != nil {
		return nil, storageErr("profile", "load user", err)
	}
	if user == nil {
		return nil, response.NotFound("user not found")
	}
	return user, nil
}
