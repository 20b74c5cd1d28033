package router

import (
	"net/http"
	"net/http/pprof"

	"Memora/config"
	"Memora/middleware"
	"Memora/pkg/context"
	"Memora/pkg/response"
	"Memora/socket/handler"

	"github.com/gin-gonic/gin"
)

// NewRouter 初始化配置路由
func NewRouter(conf *config.Config, handle *handler.Handler) *gin.Engine {
	if !conf.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.GinZap(), gin.CustomRecovery(func(c *gin.Context, _ any) {
		response.Abort(c, http.StatusInternalServerError, "系统错误，请重试!!!")
	}))

	authorize := middleware.Auth([]byte(conf.Jwt.Secret))

	router.GET("/wss", authorize, context.Wrap(handle.Notice.Conn))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]any{"ok": "success"})
	})

	router.NoRoute(func(c *gin.Context) {
		response.Abort(c, http.StatusNotFound, "请求地址不存在")
	})

	if conf.Debug() {
		debug := router.Group("/debug")
		{
			debug.GET("/", gin.WrapF(pprof.Index))
			debug.GET("/cmdline", gin.WrapF(pprof.Cmdline))
			debug.GET("/profile", gin.WrapF(pprof.Profile))
			debug.GET("/symbol", gin.WrapF(pprof.Symbol))
			debug.GET("/trace", gin.WrapF(pprof.Trace))
			debug.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
			debug.GET("/heap", gin.WrapH(pprof.Handler("heap")))
		}
	}

	return router
}
