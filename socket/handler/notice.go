package handler

import (
	"Memora/pkg/context"
	"Memora/pkg/log"
	"Memora/pkg/socket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoticeChannel 通知推送通道
type NoticeChannel struct {
	Hub *socket.Hub
}

// Conn 升级为 websocket 连接，阻塞到连接断开
func (ch *NoticeChannel) Conn(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	if err := ch.Hub.Serve(c.Writer, c.Request, userID); err != nil {
		log.L.Error("websocket upgrade failed", zap.Uint64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}
