package dao

import (
	"Memora/models"

	"gorm.io/gorm"
)

const (
	ColLikeCounter    = "like_counter"
	ColCommentCounter = "comment_counter"
)

type Memories struct {
	Repo[models.Memory]
}

func NewMemories(db *gorm.DB) *Memories {
	return &Memories{Repo: NewRepo[models.Memory](db)}
}
