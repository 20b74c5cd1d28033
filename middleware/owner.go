package middleware

import (
	"net/http"

	"Memora/models"
	"Memora/pkg/context"
	"Memora/pkg/response"
	"Memora/service"

	"github.com/gin-gonic/gin"
)

// EntityOwner 只允许实体的归属用户继续，param 为路径上的实体 ID
func EntityOwner(svc service.IOwnershipService, kind models.EntityKind, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := context.GetUserID(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		id, err := context.ParamID(c, param)
		if err != nil {
			status, env := response.FromError(err)
			c.AbortWithStatusJSON(status, env)
			return
		}

		ok, err := svc.IsOwner(c.Request.Context(), kind, id, uid)
		if err != nil {
			status, env := response.FromError(err)
			c.AbortWithStatusJSON(status, env)
			return
		}
		if !ok {
			response.Abort(c, http.StatusForbidden, "permission denied")
			return
		}
		c.Next()
	}
}
