package service

import (
	"context"
	"time"

	"Memora/dao"
	"Memora/models"
	"Memora/pkg/log"
	"Memora/types"

	"go.uber.org/zap"
)

const publishTimeout = 3 * time.Second

// Notifier 维护通知记录和接收者的未读数
type Notifier struct {
	Publisher INoticePublisher
}

// Notify 写入通知并给接收者未读数 +1
func (n *Notifier) Notify(ctx context.Context, store *dao.Store, notice *models.Notification) error {
	if err := store.Notifications.Create(ctx, notice); err != nil {
		return err
	}
	return store.Users.Incr(ctx, notice.RecipientID, dao.ColNotificationCount)
}

// Retract 只撤回未读的匹配通知；已读或不存在时什么都不做
func (n *Notifier) Retract(ctx context.Context, store *dao.Store, match dao.NotificationMatch) (bool, error) {
	notice, err := store.Notifications.FindUnread(ctx, match)
	if err != nil {
		return false, err
	}
	if notice == nil {
		return false, nil
	}
	rows, err := store.Notifications.Delete(ctx, "id = ?", notice.ID)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, nil
	}
	if _, err := store.Users.Decr(ctx, match.RecipientID, dao.ColNotificationCount); err != nil {
		return true, err
	}
	return true, nil
}

// RetractFollow 取消关注时删除关注通知（包括已读），未读数无条件 -1
func (n *Notifier) RetractFollow(ctx context.Context, store *dao.Store, recipientID, interactorID uint64) error {
	if _, err := store.Notifications.DeleteFollowNotices(ctx, recipientID, interactorID); err != nil {
		return err
	}
	_, err := store.Users.Decr(ctx, recipientID, dao.ColNotificationCount)
	return err
}

// Publish 在写入完成后推送，失败只记录日志
func (n *Notifier) Publish(ctx context.Context, store *dao.Store, notice *models.Notification) {
	if n.Publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	brief := models.UserBrief{ID: notice.InteractorID}
	if user, err := store.Users.FindById(ctx, notice.InteractorID); err != nil {
		log.L.Warn("load interactor failed", zap.Uint64("interactor_id", notice.InteractorID), zap.Error(err))
	} else if user != nil {
		brief = user.Brief()
	}

	payload := types.NewNoticePayload(notice, brief)
	if err := n.Publisher.Publish(ctx, notice.RecipientID, payload); err != nil {
		log.L.Warn("publish notice failed",
			zap.Uint64("recipient_id", notice.RecipientID),
			zap.Uint64("notification_id", notice.ID),
			zap.Error(err),
		)
	}
}
