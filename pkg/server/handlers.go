package server

import (
	"Memora/handler"
)

type Handlers struct {
	Follow       *handler.Follow
	Like         *handler.Like
	Comment      *handler.Comment
	Notification *handler.Notification
	User         *handler.User
	Health       *handler.Health
}
