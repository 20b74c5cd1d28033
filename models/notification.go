package models

import "time"

type NotificationType string

const (
	NotificationNewFollower NotificationType = "NEW_FOLLOWER"
	NotificationLike        NotificationType = "LIKE"
	NotificationComment     NotificationType = "COMMENT"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationNewFollower, NotificationLike, NotificationComment:
		return true
	}
	return false
}

// Notification 通知，只有未读的计入 users.notification_count
type Notification struct {
	ID           uint64           `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	RecipientID  uint64           `gorm:"column:recipient_id;not null;index:idx_notification_recipient_read_created,priority:1" json:"recipient_id"`
	InteractorID uint64           `gorm:"column:interactor_id;not null" json:"interactor_id"`
	Type         NotificationType `gorm:"column:type;type:varchar(16);not null" json:"type"`
	SourceID     *uint64          `gorm:"column:source_id" json:"source_id,omitempty"`
	IsRead       bool             `gorm:"column:is_read;not null;default:false;index:idx_notification_recipient_read_created,priority:2" json:"is_read"`
	CreatedAt    time.Time        `gorm:"column:created_at;not null;index:idx_notification_recipient_read_created,priority:3" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n Notification) OwnerID() uint64 { return n.RecipientID }
