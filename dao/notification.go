package dao

import (
	"context"
	"fmt"
	"time"

	"Memora/models"

	"gorm.io/gorm"
)

type Notifications struct {
	Repo[models.Notification]
}

func NewNotifications(db *gorm.DB) *Notifications {
	return &Notifications{Repo: NewRepo[models.Notification](db)}
}

// NotificationMatch 定位某次互动产生的未读通知
type NotificationMatch struct {
	RecipientID  uint64
	InteractorID uint64
	Type         models.NotificationType
	CreatedAt    time.Time
}

// ListByRecipient 按 created_at DESC, id DESC 排序
func (d *Notifications) ListByRecipient(ctx context.Context, recipientID uint64, unreadOnly bool) ([]*models.Notification, error) {
	items, err := d.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		db = db.Where("recipient_id = ?", recipientID)
		if unreadOnly {
			db = db.Where("is_read = ?", false)
		}
		return db.Order("created_at DESC").Order("id DESC")
	})
	if err != nil {
		return nil, fmt.Errorf("dao.Notifications.ListByRecipient: %w", err)
	}
	return items, nil
}

// FindUnread 查找匹配的未读通知，已读的不返回
func (d *Notifications) FindUnread(ctx context.Context, m NotificationMatch) (*models.Notification, error) {
	return d.FindByWhere(ctx,
		"recipient_id = ? AND interactor_id = ? AND type = ? AND is_read = ? AND created_at = ?",
		m.RecipientID, m.InteractorID, m.Type, false, m.CreatedAt,
	)
}

// DeleteFollowNotices 删除关注产生的通知（不区分已读）
func (d *Notifications) DeleteFollowNotices(ctx context.Context, recipientID, interactorID uint64) (int64, error) {
	return d.Delete(ctx, "recipient_id = ? AND interactor_id = ? AND type = ?",
		recipientID, interactorID, models.NotificationNewFollower)
}

// MarkRead 只把未读的置为已读，返回受影响行数
func (d *Notifications) MarkRead(ctx context.Context, id uint64) (int64, error) {
	res := d.Model(ctx).
		Where("id = ? AND is_read = ?", id, false).
		UpdateColumn("is_read", true)
	return res.RowsAffected, res.Error
}

func (d *Notifications) UnreadIds(ctx context.Context, recipientID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := d.Model(ctx).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Pluck("id", &ids).Error
	return ids, err
}

// MarkReadByIds 批量置为已读，返回受影响行数
func (d *Notifications) MarkReadByIds(ctx context.Context, recipientID uint64, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := d.Model(ctx).
		Where("recipient_id = ? AND is_read = ? AND id IN ?", recipientID, false, ids).
		UpdateColumn("is_read", true)
	return res.RowsAffected, res.Error
}
