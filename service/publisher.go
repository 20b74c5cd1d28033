package service

import (
	"context"

	"Memora/types"
)

// INoticePublisher 通知实时推送，尽力而为，不保证送达
type INoticePublisher interface {
	Publish(ctx context.Context, recipientID uint64, payload *types.NoticePayload) error
}

// NopPublisher 不推送
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, uint64, *types.NoticePayload) error {
	return nil
}
