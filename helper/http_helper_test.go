package helper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-article-api/models"
)

func TestGetStatusCode(t *testing.T) {
	helper := &HTTPHelper{}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", models.NewValidationError("missing required fields"), http.StatusBadRequest},
		{"storage", &models.StorageError{Op: "save", Err: errors.New("disk full")}, http.StatusBadRequest},
		{"not found", &models.NotFoundError{ID: 3}, http.StatusNotFound},
		{"persistence", &models.PersistenceError{Err: errors.New("down")}, http.StatusInternalServerError},
		{"unknown", errors.New("surprise"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helper.GetStatusCode(tt.err))
		})
	}
}

func TestSendErrorValidationListsAllViolations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	helper := &HTTPHelper{}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	helper.SendError(c, models.NewValidationError("first violation", "second violation"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "first violation")
	assert.Contains(t, w.Body.String(), "second violation")
}

func TestValidatorCollectsEveryViolation(t *testing.T) {
	validator := NewValidator()

	article := &models.Article{
		AuthorID: 1,
		Title:    "ok title",
		Content:  "",
		Status:   "archived",
	}

	err := validator.ValidateStruct(article)

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Violations, 2)
}

func TestValidatorPassesValidArticle(t *testing.T) {
	validator := NewValidator()

	article := &models.Article{
		AuthorID: 1,
		Title:    "ok title",
		Content:  "body",
		Status:   models.StatusDraft,
	}

	assert.NoError(t, validator.ValidateStruct(article))
}
