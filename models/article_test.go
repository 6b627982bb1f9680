package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestArticleStatusIsValid(t *testing.T) {
	tests := []struct {
		status ArticleStatus
		want   bool
	}{
		{StatusDraft, true},
		{StatusPublished, true},
		{StatusDeleted, true},
		{ArticleStatus("archived"), false},
		{ArticleStatus(""), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.IsValid(), "status %q", tt.status)
	}
}

func TestNewArticleSummaryFormatsDate(t *testing.T) {
	article := &Article{
		ID:              4,
		Title:           "A Post",
		Status:          StatusPublished,
		Slug:            "a-post",
		PublicationDate: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
	}

	summary := NewArticleSummary(article)

	assert.Equal(t, uint(4), summary.ID)
	assert.Equal(t, "2024-03-01 10:30:00", summary.PublicationDate)
	assert.Equal(t, StatusPublished, summary.Status)
	assert.Equal(t, "a-post", summary.Slug)
}

func TestNewArticleDetail(t *testing.T) {
	cover := "cover-abc.png"
	article := &Article{
		ID:              2,
		AuthorID:        9,
		Title:           "Full Post",
		Content:         "Body",
		Keywords:        datatypes.NewJSONSlice([]string{"go", "web"}),
		Status:          StatusDraft,
		Slug:            "full-post",
		PublicationDate: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		CreatedAt:       time.Date(2024, 2, 28, 8, 0, 0, 0, time.UTC),
		CoverPicture:    &cover,
	}

	detail := NewArticleDetail(article)

	assert.Equal(t, uint(9), detail.AuthorID)
	assert.Equal(t, []string{"go", "web"}, detail.Keywords)
	assert.Equal(t, "2024-03-01 10:30:00", detail.PublicationDate)
	assert.Equal(t, "2024-02-28 08:00:00", detail.CreatedAt)
	assert.Equal(t, &cover, detail.CoverPicture)
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("title is required", "content is required")
	assert.Equal(t, "title is required; content is required", err.Error())
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{ID: 17}
	assert.Equal(t, "article 17 not found", err.Error())
}
