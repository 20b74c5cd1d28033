package types

// CommentInput 创建、修改评论的内容校验
type CommentInput struct {
	Content string `json:"content" validate:"notblank,maxrunes=1000"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
