package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope 统一返回结构
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// FromError 把错误转换成失败的 Envelope 和对应状态码
func FromError(err error) (int, Envelope) {
	var be *BizError
	if errors.As(err, &be) {
		return be.HTTPStatus(), Envelope{Success: false, Message: be.Msg}
	}
	return http.StatusInternalServerError, Envelope{Success: false, Message: Storage(err).Msg}
}

func Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, OK(message, data))
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, OK(message, data))
}

func Fail(c *gin.Context, err error) {
	status, env := FromError(err)
	c.JSON(status, env)
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Envelope{
		Success: false,
		Message: msg,
	})
}
