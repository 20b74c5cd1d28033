package types

import (
	"encoding/json"
	"time"

	"Memora/models"
)

// EventNotification 推送给客户端的事件名
const EventNotification = "notification"

// NoticePayload 新通知的实时推送内容
type NoticePayload struct {
	NotificationID uint64                  `json:"notification_id,string"`
	RecipientID    uint64                  `json:"recipient_id,string"`
	Type           models.NotificationType `json:"type"`
	SourceID       *uint64                 `json:"source_id,omitempty,string"`
	Interactor     models.UserBrief        `json:"interactor"`
	CreatedAt      time.Time               `json:"created_at"`
}

func NewNoticePayload(n *models.Notification, interactor models.UserBrief) *NoticePayload {
	return &NoticePayload{
		NotificationID: n.ID,
		RecipientID:    n.RecipientID,
		Type:           n.Type,
		SourceID:       n.SourceID,
		Interactor:     interactor,
		CreatedAt:      n.CreatedAt,
	}
}

// SystemMessage 跨进程传递的消息外壳
type SystemMessage struct {
	Type        string          `json:"type"`
	RecipientID uint64          `json:"recipient_id,string"`
	Data        json.RawMessage `json:"data"`
}
