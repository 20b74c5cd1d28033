package dao

import (
	"context"
	"errors"
	"fmt"

	"Memora/models"
)

var ErrUnknownEntityKind = errors.New("unknown entity kind")

// OwnerLoader 按 ID 加载实体，不存在返回 nil, nil
type OwnerLoader func(ctx context.Context, id uint64) (models.Owned, error)

// OwnerRegistry 按实体类型查找归属用户
type OwnerRegistry struct {
	loaders map[models.EntityKind]OwnerLoader
}

func NewOwnerRegistry(store *Store) *OwnerRegistry {
	r := &OwnerRegistry{loaders: make(map[models.EntityKind]OwnerLoader)}
	r.Register(models.KindUser, ownerLoader(store.Users.Repo))
	r.Register(models.KindMemory, ownerLoader(store.Memories.Repo))
	r.Register(models.KindComment, ownerLoader(store.Comments.Repo))
	r.Register(models.KindLike, ownerLoader(store.Likes.Repo))
	r.Register(models.KindNotification, ownerLoader(store.Notifications.Repo))
	return r
}

func (r *OwnerRegistry) Register(kind models.EntityKind, loader OwnerLoader) {
	r.loaders[kind] = loader
}

func (r *OwnerRegistry) Kinds() []models.EntityKind {
	kinds := make([]models.EntityKind, 0, len(r.loaders))
	for k := range r.loaders {
		kinds = append(kinds, k)
	}
	return kinds
}

// Owner 实体不存在时返回 nil, nil
func (r *OwnerRegistry) Owner(ctx context.Context, kind models.EntityKind, id uint64) (models.Owned, error) {
	loader, ok := r.loaders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntityKind, kind)
	}
	return loader(ctx, id)
}

func ownerLoader[T models.Owned](repo Repo[T]) OwnerLoader {
	return func(ctx context.Context, id uint64) (models.Owned, error) {
		item, err := repo.FindById(ctx, id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, nil
		}
		return *item, nil
	}
}
