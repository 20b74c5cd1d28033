package handler

import (
	"net/http"

	"Memora/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type Health struct {
	Db *gorm.DB
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/health", h.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (h *Health) Check(c *gin.Context) {
	sqlDB, err := h.Db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Envelope{Success: false, Message: err.Error()})
		return
	}
	response.Success(c, "ok", nil)
}
