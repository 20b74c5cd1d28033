package handler

import (
	"Memora/config"
	"Memora/middleware"
	"Memora/pkg/context"
	"Memora/pkg/response"
	"Memora/service"

	"github.com/gin-gonic/gin"
)

type Like struct {
	Config      *config.Config
	LikeService service.ILikeService
}

func (l *Like) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(l.Config.Jwt.Secret))
	g := r.Group("/v1", authorize)
	g.POST("/memories/:memory_id/like", context.Wrap(l.LikeMemory))
	g.DELETE("/memories/:memory_id/like", context.Wrap(l.UnlikeMemory))
	g.GET("/memories/:memory_id/like", context.Wrap(l.GetLikeStatus))
	g.GET("/likes/:like_id/memory", context.Wrap(l.GetMemoryByLike))
}

// LikeMemory 点赞
func (l *Like) LikeMemory(c *gin.Context) error {
	userID, memoryID, err := actorAndParam(c, "memory_id")
	if err != nil {
		return err
	}

	like, err := l.LikeService.Like(c.Request.Context(), userID, memoryID)
	if err != nil {
		return err
	}

	response.Created(c, "memory liked successfully", like)
	return nil
}

// UnlikeMemory 取消点赞
func (l *Like) UnlikeMemory(c *gin.Context) error {
	userID, memoryID, err := actorAndParam(c, "memory_id")
	if err != nil {
		return err
	}

	if err := l.LikeService.Unlike(c.Request.Context(), userID, memoryID); err != nil {
		return err
	}

	response.Success(c, "memory unliked successfully", nil)
	return nil
}

func (l *Like) GetLikeStatus(c *gin.Context) error {
	userID, memoryID, err := actorAndParam(c, "memory_id")
	if err != nil {
		return err
	}

	liked, err := l.LikeService.HasLiked(c.Request.Context(), userID, memoryID)
	if err != nil {
		return err
	}

	response.Success(c, "", gin.H{"liked": liked})
	return nil
}

func (l *Like) GetMemoryByLike(c *gin.Context) error {
	likeID, err := context.ParamID(c, "like_id")
	if err != nil {
		return err
	}

	memory, err := l.LikeService.MemoryByLike(c.Request.Context(), likeID)
	if err != nil {
		return err
	}

	response.Success(c, "", memory)
	return nil
}
