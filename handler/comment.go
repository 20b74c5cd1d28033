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

type Comment struct {
	Config           *config.Config
	CommentService   service.ICommentService
	OwnershipService service.IOwnershipService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	isAuthor := middleware.EntityOwner(h.OwnershipService, models.KindComment, "comment_id")

	g := r.Group("/v1", authorize)
	g.GET("/memories/:memory_id/comments", context.Wrap(h.ListComments))
	g.POST("/memories/:memory_id/comments", context.Wrap(h.CreateComment))
	g.GET("/comments/:comment_id", context.Wrap(h.GetComment))
	g.GET("/comments/:comment_id/memory", context.Wrap(h.GetMemoryByComment))
	g.PUT("/comments/:comment_id", isAuthor, context.Wrap(h.UpdateComment))
	g.DELETE("/comments/:comment_id", isAuthor, context.Wrap(h.DeleteComment))
}

// CreateComment 发表评论
func (h *Comment) CreateComment(c *gin.Context) error {
	userID, memoryID, err := actorAndParam(c, "memory_id")
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("content is required")
	}

	comment, err := h.CommentService.Create(c.Request.Context(), userID, memoryID, req.Content)
	if err != nil {
		return err
	}

	response.Created(c, "comment created successfully", comment)
	return nil
}

// DeleteComment 删除评论
func (h *Comment) DeleteComment(c *gin.Context) error {
	userID, commentID, err := actorAndParam(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.CommentService.Delete(c.Request.Context(), userID, commentID); err != nil {
		return err
	}

	response.Success(c, "comment deleted successfully", nil)
	return nil
}

func (h *Comment) UpdateComment(c *gin.Context) error {
	commentID, err := context.ParamID(c, "comment_id")
	if err != nil {
		return err
	}

	var req types.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("content is required")
	}

	comment, err := h.CommentService.Update(c.Request.Context(), commentID, req.Content)
	if err != nil {
		return err
	}

	response.Success(c, "comment updated successfully", comment)
	return nil
}

func (h *Comment) GetComment(c *gin.Context) error {
	commentID, err := context.ParamID(c, "comment_id")
	if err != nil {
		return err
	}

	comment, err := h.CommentService.Get(c.Request.Context(), commentID)
	if err != nil {
		return err
	}

	response.Success(c, "", comment)
	return nil
}

func (h *Comment) ListComments(c *gin.Context) error {
	memoryID, err := context.ParamID(c, "memory_id")
	if err != nil {
		return err
	}

	items, err := h.CommentService.ListByMemory(c.Request.Context(), memoryID)
	if err != nil {
		return err
	}

	response.Success(c, "", items)
	return nil
}

func (h *Comment) GetMemoryByComment(c *gin.Context) error {
	commentID, err := context.ParamID(c, "comment_id")
	if err != nil {
		return err
	}

	memory, err := h.CommentService.MemoryByComment(c.Request.Context(), commentID)
	if err != nil {
		return err
	}

	response.Success(c, "", memory)
	return nil
}
