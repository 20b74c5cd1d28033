package handler

import (
	"errors"
	"net/http"

	"Memora/pkg/context"
	"Memora/pkg/response"

	"github.com/gin-gonic/gin"
)

var errUnauthorized = errors.New("unauthorized")

// actorAndParam 当前登录用户和路径上的目标 ID
func actorAndParam(c *gin.Context, param string) (uint64, uint64, error) {
	uid, err := actor(c)
	if err != nil {
		return 0, 0, err
	}
	id, err := context.ParamID(c, param)
	if err != nil {
		return 0, 0, err
	}
	return uid, id, nil
}

func actor(c *gin.Context) (uint64, error) {
	uid, err := context.GetUserID(c)
	if err != nil {
		response.Abort(c, http.StatusUnauthorized, "unauthorized")
		return 0, errUnauthorized
	}
	return uid, nil
}
