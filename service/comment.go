package service

import (
	"context"
	"strings"

	"Memora/dao"
	"Memora/models"
	"Memora/pkg/database"
	"Memora/pkg/log"
	"Memora/pkg/metrics"
	"Memora/pkg/response"
	"Memora/pkg/snowflake"
	"Memora/pkg/validate"
	"Memora/types"

	"go.uber.org/zap"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Create(ctx context.Context, userID, memoryID uint64, content string) (*models.Comment, error)
	Delete(ctx context.Context, actorID, commentID uint64) error
	Update(ctx context.Context, commentID uint64, content string) (*models.Comment, error)
	Get(ctx context.Context, commentID uint64) (*models.Comment, error)
	ListByMemory(ctx context.Context, memoryID uint64) ([]*models.Comment, error)
	MemoryByComment(ctx context.Context, commentID uint64) (*models.Memory, error)
}

type CommentService struct {
	Store    *dao.Store
	Notifier *Notifier
}

func (s *CommentService) Create(ctx context.Context, userID, memoryID uint64, content string) (comment *models.Comment, err error) {
	defer func() { metrics.Observe("comment", err) }()

	content = strings.TrimSpace(content)
	if err := validate.Struct(types.CommentInput{Content: content}); err != nil {
		return nil, err
	}

	memory, err := s.Store.Memories.FindById(ctx, memoryID)
	if err != nil {
		return nil, storageErr("comment", "load memory", err)
	}
	if memory == nil {
		return nil, response.NotFound("memory not found")
	}

	now := database.Now()
	comment = &models.Comment{
		ID:        snowflake.GenID(),
		UserID:    userID,
		MemoryID:  memoryID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Comments.Create(ctx, comment); err != nil {
		return nil, storageErr("comment", "create comment", err)
	}

	if err := s.Store.Memories.Incr(ctx, memoryID, dao.ColCommentCounter); err != nil {
		return nil, storageErr("comment", "incr comment counter", err)
	}

	source := comment.ID
	notice := &models.Notification{
		ID:           snowflake.GenID(),
		RecipientID:  memory.UserID,
		InteractorID: userID,
		Type:         models.NotificationComment,
		SourceID:     &source,
		CreatedAt:    comment.CreatedAt,
	}
	if err := s.Notifier.Notify(ctx, s.Store, notice); err != nil {
		return nil, storageErr("comment", "notify", err)
	}

	s.Notifier.Publish(ctx, s.Store, notice)
	return comment, nil
}

// Delete 删除评论；通知按评论作者匹配，与操作人无关
func (s *CommentService) Delete(ctx context.Context, actorID, commentID uint64) (err error) {
	defer func() { metrics.Observe("uncomment", err) }()

	comment, err := s.Store.Comments.FindById(ctx, commentID)
	if err != nil {
		return storageErr("uncomment", "load comment", err)
	}
	if comment == nil {
		return response.NotFound("comment not found")
	}

	memory, err := s.Store.Memories.FindById(ctx, comment.MemoryID)
	if err != nil {
		return storageErr("uncomment", "load memory", err)
	}
	if memory == nil {
		return response.NotFound("memory not found")
	}

	rows, err := s.Store.Comments.Delete(ctx, "id = ?", comment.ID)
	if err != nil {
		return storageErr("uncomment", "delete comment", err)
	}
	if rows == 0 {
		return response.NotFound("comment not found")
	}

	if _, err := s.Store.Memories.Decr(ctx, memory.ID, dao.ColCommentCounter); err != nil {
		return storageErr("uncomment", "decr comment counter", err)
	}

	_, err = s.Notifier.Retract(ctx, s.Store, dao.NotificationMatch{
		RecipientID:  memory.UserID,
		InteractorID: comment.UserID,
		Type:         models.NotificationComment,
		CreatedAt:    comment.CreatedAt,
	})
	if err != nil {
		return storageErr("uncomment", "retract notice", err)
	}
	log.L.Info("comment deleted",
		zap.Uint64("comment_id", comment.ID),
		zap.Uint64("author_id", comment.UserID),
		zap.Uint64("actor_id", actorID),
	)
	return nil
}

func (s *CommentService) Update(ctx context.Context, commentID uint64, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if err := validate.Struct(types.CommentInput{Content: content}); err != nil {
		return nil, err
	}

	comment, err := s.Get(ctx, commentID)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	comment.UpdatedAt = database.Now()
	_, err = s.Store.Comments.UpdateById(ctx, commentID, map[string]any{
		"content":    comment.Content,
		"updated_at": comment.UpdatedAt,
	})
	if err != nil {
		return nil, response.Storage(err)
	}
	return comment, nil
}

func (s *CommentService) Get(ctx context.Context, commentID uint64) (*models.Comment, error) {
	comment, err := s.Store.Comments.FindById(ctx, commentID)
	if err != nil {
		return nil, response.Storage(err)
	}
	if comment == nil {
		return nil, response.NotFound("comment not found")
	}
	return comment, nil
}

func (s *CommentService) ListByMemory(ctx context.Context, memoryID uint64) ([]*models.Comment, error) {
	ok, err := s.Store.Memories.IsExist(ctx, "id = ?", memoryID)
	if err != nil {
		return nil, response.Storage(err)
	}
	if !ok {
		return nil, response.NotFound("memory not found")
	}
	items, err := s.Store.Comments.ListByMemory(ctx, memoryID)
	if err != nil {
		return nil, response.Storage(err)
	}
	return items, nil
}

func (s *CommentService) MemoryByComment(ctx context.Context, commentID uint64) (*models.Memory, error) {
	comment, err := s.Get(ctx, commentID)
	if err != nil {
		return nil, err
	}
	memory, err := s.Store.Memories.FindById(ctx, comment.MemoryID)
	if err != nil {
		return nil, response.Storage(err)
	}
	if memory == nil {
		return nil, response.NotFound("memory not found")
	}
	return memory, nil
}
