package handler

import (
	"Memora/config"
	"Memora/middleware"
	"Memora/models"
	"Memora/pkg/context"
	"Memora/pkg/response"
	"Memora/service"
	"Memora/types"

	"github.com/gin-gonic/gin"
)

type Notification struct {
	Config              *config.Config
	NotificationService service.INotificationService
	OwnershipService    service.IOwnershipService
}

func (n *Notification) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(n.Config.Jwt.Secret))
	isRecipient := middleware.EntityOwner(n.OwnershipService, models.KindNotification, "notification_id")

	g := r.Group("/v1/notifications", authorize)
	g.GET("", context.Wrap(n.List))
	g.GET("/unread", context.Wrap(n.ListUnread))
	g.GET("/count", context.Wrap(n.UnreadCount))
	g.PUT("/read", context.Wrap(n.MarkAllRead))
	g.PUT("/:notification_id/read", isRecipient, context.Wrap(n.MarkRead))
}

func (n *Notification) List(c *gin.Context) error {
	uid, err := actor(c)
	if err != nil {
		return err
	}

	items, err := n.NotificationService.List(c.Request.Context(), uid)
	if err != nil {
		return err
	}

	response.Success(c, "", items)
	return nil
}

func (n *Notification) ListUnread(c *gin.Context) error {
	uid, err := actor(c)
	if err != nil {
		return err
	}

	items, err := n.NotificationService.ListUnread(c.Request.Context(), uid)
	if err != nil {
		return err
	}

	response.Success(c, "", items)
	return nil
}

func (n *Notification) UnreadCount(c *gin.Context) error {
	uid, err := actor(c)
	if err != nil {
		return err
	}

	count, err := n.NotificationService.UnreadCount(c.Request.Context(), uid)
	if err != nil {
		return err
	}

	response.Success(c, "", types.UnreadCountResponse{Count: count})
	return nil
}

// MarkRead 标记单条已读
func (n *Notification) MarkRead(c *gin.Context) error {
	id, err := context.ParamID(c, "notification_id")
	if err != nil {
		return err
	}

	notice, err := n.NotificationService.MarkRead(c.Request.Context(), id)
	if err != nil {
		return err
	}

	response.Success(c, "notification marked as read", notice)
	return nil
}

// MarkAllRead 全部标记已读
func (n *Notification) MarkAllRead(c *gin.Context) error {
	uid, err := actor(c)
	if err != nil {
		return err
	}

	marked, err := n.NotificationService.MarkAllRead(c.Request.Context(), uid)
	if err != nil {
		return err
	}

	response.Success(c, "all notifications marked as read", types.MarkAllReadResponse{Marked: marked})
	return nil
}
