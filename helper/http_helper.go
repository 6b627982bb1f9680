package helper

import (
	"errors"
	"net/http"

	"blog-article-api/models"

	"github.com/gin-gonic/gin"
)

// HTTPHelper ...
type HTTPHelper struct{}

// GetStatusCode ...
// Map a pipeline error to its HTTP status.
func (u *HTTPHelper) GetStatusCode(err error) int {
	var (
		validationErr  *models.ValidationError
		storageErr     *models.StorageError
		notFoundErr    *models.NotFoundError
		persistenceErr *models.PersistenceError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &storageErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &persistenceErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// SendError ...
// Send error response to consumers. Validation failures carry the full
// list of violations; everything else carries a single message.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.GetStatusCode(err)

	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(status, gin.H{"errors": validationErr.Violations})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// SendCreated ...
// Send the create success response to consumers.
func (u *HTTPHelper) SendCreated(c *gin.Context, id uint, message string) {
	c.JSON(http.StatusCreated, models.CreateArticleResponse{ID: id, Message: message})
}

// SendNoContent ...
func (u *HTTPHelper) SendNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
