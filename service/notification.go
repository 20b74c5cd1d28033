package service

import (
	"context"

	"Memora/dao"
	"Memora/models"
	"Memora/pkg/log"
	"Memora/pkg/metrics"
	"Memora/pkg/response"

	"go.uber.org/zap"
)

var _ INotificationService = (*NotificationService)(nil)

type INotificationService interface {
	// List 全部通知，created_at 倒序，同一时间按 id 倒序
	List(ctx context.Context, userID uint64) ([]*models.Notification, error)
	ListUnread(ctx context.Context, userID uint64) ([]*models.Notification, error)
	UnreadCount(ctx context.Context, userID uint64) (uint64, error)
	MarkRead(ctx context.Context, notificationID uint64) (*models.Notification, error)
	// MarkAllRead 返回本次置为已读的数量
	MarkAllRead(ctx context.Context, userID uint64) (int64, error)
}

type NotificationService struct {
	Store *dao.Store
}

func (s *NotificationService) List(ctx context.Context, userID uint64) ([]*models.Notification, error) {
	items, err := s.Store.Notifications.ListByRecipient(ctx, userID, false)
	if err != nil {
		return nil, response.Storage(err)
	}
	return items, nil
}

func (s *NotificationService) ListUnread(ctx context.Context, userID uint64) ([]*models.Notification, error) {
	items, err := s.Store.Notifications.ListByRecipient(ctx, userID, true)
	if err != nil {
		return nil, response.Storage(err)
	}
	return items, nil
}

// UnreadCount 读用户上的计数，不统计通知表
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint64) (uint64, error) {
	user, err := s.Store.Users.FindById(ctx, userID)
	if err != nil {
		return 0, response.Storage(err)
	}
	if user == nil {
		return 0, response.NotFound("user not found")
	}
	return user.NotificationCount, nil
}

// MarkRead 置为已读与计数扣减在同一事务；重复标记不再扣减
func (s *NotificationService) MarkRead(ctx context.Context, notificationID uint64) (notice *models.Notification, err error) {
	defer func() { metrics.Observe("mark_read", err) }()

	err = s.Store.Transaction(ctx, func(tx *dao.Store) error {
		n, err := tx.Notifications.FindById(ctx, notificationID)
		if err != nil {
			return response.Storage(err)
		}
		if n == nil {
			return response.NotFound("notification not found")
		}

		if _, err := tx.Users.LockById(ctx, n.RecipientID); err != nil {
			return response.Storage(err)
		}

		rows, err := tx.Notifications.MarkRead(ctx, n.ID)
		if err != nil {
			return response.Storage(err)
		}
		if rows > 0 {
			if _, err := tx.Users.Decr(ctx, n.RecipientID, dao.ColNotificationCount); err != nil {
				return response.Storage(err)
			}
		}

		n.IsRead = true
		notice = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notice, nil
}

// MarkAllRead 锁住用户行后批量置为已读，按实际更新行数扣减计数
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint64) (marked int64, err error) {
	defer func() { metrics.Observe("mark_all_read", err) }()

	err = s.Store.Transaction(ctx, func(tx *dao.Store) error {
		user, err := tx.Users.LockById(ctx, userID)
		if err != nil {
			return response.Storage(err)
		}
		if user == nil {
			return response.NotFound("user not found")
		}

		ids, err := tx.Notifications.UnreadIds(ctx, userID)
		if err != nil {
			return response.Storage(err)
		}
		if len(ids) == 0 {
			return nil
		}

		rows, err := tx.Notifications.MarkReadByIds(ctx, userID, ids)
		if err != nil {
			return response.Storage(err)
		}
		if rows != int64(len(ids)) {
			log.L.Warn("mark all read snapshot drift",
				zap.Uint64("user_id", userID),
				zap.Int("snapshot", len(ids)),
				zap.Int64("updated", rows),
			)
		}

		if _, err := tx.Users.DecrBy(ctx, userID, dao.ColNotificationCount, rows); err != nil {
			return response.Storage(err)
		}
		marked = rows
		return nil
	})
	if err != nil {
		return 0, err
	}
	return marked, nil
}
