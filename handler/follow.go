package handler

import (
	"Memora/config"
	"Memora/middleware"
	"Memora/pkg/context"
	"Memora/pkg/response"
	"Memora/service"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/v1/users/:user_id", authorize)
	g.POST("/follow", context.Wrap(f.FollowUser))
	g.DELETE("/follow", context.Wrap(f.UnfollowUser))
	g.GET("/follow", context.Wrap(f.GetFollowStatus))
	g.GET("/followers", context.Wrap(f.GetFollowers))
	g.GET("/followings", context.Wrap(f.GetFollowings))
}

// FollowUser 关注用户
func (f *Follow) FollowUser(c *gin.Context) error {
	userID, targetID, err := actorAndParam(c, "user_id")
	if err != nil {
		return err
	}

	row, err := f.FollowService.Follow(c.Request.Context(), userID, targetID)
	if err != nil {
		return err
	}

	response.Created(c, "user followed successfully", row)
	return nil
}

// UnfollowUser 取消关注
func (f *Follow) UnfollowUser(c *gin.Context) error {
	userID, targetID, err := actorAndParam(c, "user_id")
	if err != nil {
		return err
	}

	if err := f.FollowService.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		return err
	}

	response.Success(c, "user unfollowed successfully", nil)
	return nil
}

// GetFollowStatus 是否已关注
func (f *Follow) GetFollowStatus(c *gin.Context) error {
	userID, targetID, err := actorAndParam(c, "user_id")
	if err != nil {
		return err
	}

	ok, err := f.FollowService.IsFollowing(c.Request.Context(), userID, targetID)
	if err != nil {
		return err
	}

	response.Success(c, "", gin.H{"is_following": ok})
	return nil
}

func (f *Follow) GetFollowers(c *gin.Context) error {
	targetID, err := context.ParamID(c, "user_id")
	if err != nil {
		return err
	}

	users, err := f.FollowService.Followers(c.Request.Context(), targetID)
	if err != nil {
		return err
	}

	response.Success(c, "", users)
	return nil
}

func (f *Follow) GetFollowings(c *gin.Context) error {
	targetID, err := context.ParamID(c, "user_id")
	if err != nil {
		return err
	}

	users, err := f.FollowService.Followings(c.Request.Context(), targetID)
	if err != nil {
		return err
	}

	response.Success(c, "", users)
	return nil
}
