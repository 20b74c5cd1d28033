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

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, userID, memoryID uint64) (*models.Like, error)
	Unlike(ctx context.Context, userID, memoryID uint64) error
	HasLiked(ctx context.Context, userID, memoryID uint64) (bool, error)
	MemoryByLike(ctx context.Context, likeID uint64) (*models.Memory, error)
}

type LikeService struct {
	Store    *dao.Store
	Notifier *Notifier
}

func (s *LikeService) Like(ctx context.Context, userID, memoryID uint64) (like *models.Like, err error) {
	defer func() { metrics.Observe("like", err) }()

	memory, err := s.loadMemory(ctx, "like", memoryID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Store.Likes.Find(ctx, userID, memoryID)
	if err != nil {
		return nil, storageErr("like", "load like", err)
	}
	if existing != nil {
		return nil, response.Conflict("memory already liked")
	}

	like = &models.Like{
		ID:        snowflake.GenID(),
		UserID:    userID,
		MemoryID:  memoryID,
		CreatedAt: database.Now(),
	}
	if err := s.Store.Likes.Create(ctx, like); err != nil {
		if dao.IsDuplicateKey(err) {
			return nil, response.Conflict("memory already liked")
		}
		return nil, storageErr("like", "create like", err)
	}

	if err := s.Store.Memories.Incr(ctx, memoryID, dao.ColLikeCounter); err != nil {
		return nil, storageErr("like", "incr like counter", err)
	}

	source := like.ID
	notice := &models.Notification{
		ID:           snowflake.GenID(),
		RecipientID:  memory.UserID,
		InteractorID: userID,
		Type:         models.NotificationLike,
		SourceID:     &source,
		CreatedAt:    like.CreatedAt,
	}
	if err := s.Notifier.Notify(ctx, s.Store, notice); err != nil {
		return nil, storageErr("like", "notify", err)
	}

	s.Notifier.Publish(ctx, s.Store, notice)
	return like, nil
}

func (s *LikeService) Unlike(ctx context.Context, userID, memoryID uint64) (err error) {
	defer func() { metrics.Observe("unlike", err) }()

	memory, err := s.loadMemory(ctx, "unlike", memoryID)
	if err != nil {
		return err
	}

	like, err := s.Store.Likes.Find(ctx, userID, memoryID)
	if err != nil {
		return storageErr("unlike", "load like", err)
	}
	if like == nil {
		return response.NotFound("like not found")
	}

	rows, err := s.Store.Likes.Delete(ctx, "id = ?", like.ID)
	if err != nil {
		return storageErr("unlike", "delete like", err)
	}
	if rows == 0 {
		return response.NotFound("like not found")
	}

	if _, err := s.Store.Memories.Decr(ctx, memoryID, dao.ColLikeCounter); err != nil {
		return storageErr("unlike", "decr like counter", err)
	}

	_, err = s.Notifier.Retract(ctx, s.Store, dao.NotificationMatch{
		RecipientID:  memory.UserID,
		InteractorID: userID,
		Type:         models.NotificationLike,
		CreatedAt:    like.CreatedAt,
	})
	if err != nil {
		return storageErr("unlike", "retract notice", err)
	}
	return nil
}

func (s *LikeService) HasLiked(ctx context.Context, userID, memoryID uint64) (bool, error) {
	ok, err := s.Store.Likes.IsLiked(ctx, userID, memoryID)
	if err != nil {
		return false, response.Storage(err)
	}
	return ok, nil
}

func (s *LikeService) MemoryByLike(ctx context.Context, likeID uint64) (*models.Memory, error) {
	like, err := s.Store.Likes.FindById(ctx, likeID)
	if err != nil {
		return nil, response.Storage(err)
	}
	if like == nil {
		return nil, response.NotFound("like not found")
	}
	return s.loadMemory(ctx, "memory by like", like.MemoryID)
}

func (s *LikeService) loadMemory(ctx context.Context, op string, memoryID uint64) (*models.Memory, error) {
	memory, err := s.Store.Memories.FindById(ctx, memoryID)
	if err != nil {
		return nil, storageErr(op, "load memory", err)
	}
	if memory == nil {
		return nil, response.NotFound("memory not found")
	}
	return memory, nil
}
