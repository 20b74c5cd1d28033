package dao

import (
	"context"

	"Memora/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	ColFollowersCount    = "followers_count"
	ColFollowingsCount   = "followings_count"
	ColNotificationCount = "notification_count"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// LockById 加行锁读取，需在事务内调用
func (u *Users) LockById(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	res := u.Db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Limit(1).
		Find(&user)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

func (u *Users) FindByIds(ctx context.Context, ids []uint64) (map[uint64]*models.User, error) {
	out := make(map[uint64]*models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []*models.User
	if err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, user := range users {
		out[user.ID] = user
	}
	return out, nil
}
