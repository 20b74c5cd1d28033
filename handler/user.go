package handler

import (
	"Memora/config"
	"Memora/middleware"
	"Memora/pkg/context"
	"Memora/pkg/response"
	"Memora/service"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	g := r.Group("/v1", authorize)
	g.GET("/me", context.Wrap(u.Me))
	g.GET("/users/:user_id", context.Wrap(u.GetUser))
}

// Me 当前登录用户
func (u *User) Me(c *gin.Context) error {
	userID, err := actor(c)
	if err != nil {
		return err
	}

	user, err := u.UserService.Profile(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, "", user)
	return nil
}

func (u *User) GetUser(c *gin.Context) error {
	userID, err := context.ParamID(c, "user_id")
	if err != nil {
		return err
	}

	user, err := u.UserService.Profile(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, "", user)
	return nil
}
