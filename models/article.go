package models

import (
	"time"

	"gorm.io/datatypes"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusDeleted   ArticleStatus = "deleted"
)

func (s ArticleStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusDeleted:
		return true
	}
	return false
}

// Article is the persisted blog article. Deletion is a status transition,
// never a row removal, so deleted articles stay readable by id.
type Article struct {
	ID              uint                        `json:"id" gorm:"primarykey"`
	AuthorID        uint                        `json:"authorId" gorm:"not null" validate:"required"`
	Title           string                      `json:"title" gorm:"not null" validate:"required,max=100"`
	Content         string                      `json:"content" gorm:"type:text" validate:"required"`
	Keywords        datatypes.JSONSlice[string] `json:"keywords"`
	Status          ArticleStatus               `json:"status" gorm:"default:'draft'" validate:"required,oneof=draft published deleted"`
	Slug            string                      `json:"slug" gorm:"not null"`
	PublicationDate time.Time                   `json:"publicationDate"`
	CreatedAt       time.Time                   `json:"createdAt"`
	CoverPicture    *string                     `json:"coverPicture"`
}
