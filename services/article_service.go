package services

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"blog-article-api/helper"
	"blog-article-api/models"
	"blog-article-api/repositories"
	"blog-article-api/storage"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Accepted layouts for the publicationDate field, tried in order.
var publicationDateLayouts = []string{
	time.RFC3339,
	models.TimeFormat,
	"2006-01-02",
}

type ArticleService interface {
	Create(req models.CreateArticleRequest, upload *models.Upload) (*models.Article, error)
	List() ([]models.ArticleSummary, error)
	Show(id uint) (*models.ArticleDetail, error)
	Update(id uint, req models.UpdateArticleRequest, upload *models.Upload) error
	Delete(id uint) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	files       storage.FileStorage
	validator   *helper.Validator
}

func NewArticleService(articleRepo repositories.ArticleRepository, files storage.FileStorage, validator *helper.Validator) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		files:       files,
		validator:   validator,
	}
}

func (s *articleService) Create(req models.CreateArticleRequest, upload *models.Upload) (*models.Article, error) {
	if strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Content) == "" ||
		req.AuthorID == 0 {
		return nil, models.NewValidationError("missing required fields")
	}

	publicationDate := time.Now()
	if req.PublicationDate != "" {
		parsed, err := parsePublicationDate(req.PublicationDate)
		if err != nil {
			return nil, models.NewValidationError("invalid publication date")
		}
		publicationDate = parsed
	}

	status := models.StatusDraft
	if req.Status != "" {
		status = models.ArticleStatus(req.Status)
	}

	keywords := req.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	article := &models.Article{
		AuthorID:        req.AuthorID,
		Title:           req.Title,
		Content:         req.Content,
		Keywords:        datatypes.NewJSONSlice(keywords),
		Status:          status,
		Slug:            slug.Make(req.Title),
		PublicationDate: publicationDate,
	}

	// Validate before touching storage so a rejected request never
	// leaves an orphaned cover file behind.
	if err := s.validator.ValidateStruct(article); err != nil {
		return nil, err
	}

	if upload != nil {
		stored, err := s.storeCover(upload)
		if err != nil {
			return nil, &models.StorageError{Op: "save", Err: err}
		}
		article.CoverPicture = &stored
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, &models.PersistenceError{Err: err}
	}

	return article, nil
}

// List returns summaries of every non-deleted article, ordered by id.
func (s *articleService) List() ([]models.ArticleSummary, error) {
	articles, err := s.articleRepo.GetByStatuses([]models.ArticleStatus{
		models.StatusDraft,
		models.StatusPublished,
	})
	if err != nil {
		return nil, &models.PersistenceError{Err: err}
	}

	summaries := make([]models.ArticleSummary, 0, len(articles))
	for i := range articles {
		summaries = append(summaries, models.NewArticleSummary(&articles[i]))
	}

	return summaries, nil
}

// Show returns the full projection regardless of status, deleted included.
func (s *articleService) Show(id uint) (*models.ArticleDetail, error) {
	article, err := s.findArticle(id)
	if err != nil {
		return nil, err
	}

	detail := models.NewArticleDetail(article)
	return &detail, nil
}

func (s *articleService) Update(id uint, req models.UpdateArticleRequest, upload *models.Upload) error {
	article, err := s.findArticle(id)
	if err != nil {
		return err
	}

	if req.Title != nil {
		article.Title = *req.Title
		article.Slug = slug.Make(*req.Title)
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Keywords != nil {
		article.Keywords = datatypes.NewJSONSlice(*req.Keywords)
	}
	if req.Status != nil {
		article.Status = models.ArticleStatus(*req.Status)
	}
	if req.PublicationDate != nil {
		parsed, err := parsePublicationDate(*req.PublicationDate)
		if err != nil {
			return models.NewValidationError("invalid publication date")
		}
		article.PublicationDate = parsed
	}

	if err := s.validator.ValidateStruct(article); err != nil {
		return err
	}

	if upload != nil {
		stored, err := s.storeCover(upload)
		if err != nil {
			return &models.StorageError{Op: "save", Err: err}
		}
		if article.CoverPicture != nil {
			// Best effort: a cover we cannot remove is not the caller's problem.
			if err := s.files.Remove(*article.CoverPicture); err != nil {
				log.Warn().Err(err).Str("file", *article.CoverPicture).Msg("could not remove replaced cover picture")
			}
		}
		article.CoverPicture = &stored
	}

	if err := s.articleRepo.Update(article); err != nil {
		return &models.PersistenceError{Err: err}
	}

	return nil
}

// Delete marks the article deleted. The row and its cover file stay put.
func (s *articleService) Delete(id uint) error {
	article, err := s.findArticle(id)
	if err != nil {
		return err
	}

	article.Status = models.StatusDeleted
	if err := s.articleRepo.Update(article); err != nil {
		return &models.PersistenceError{Err: err}
	}

	return nil
}

func (s *articleService) findArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{ID: id}
		}
		return nil, &models.PersistenceError{Err: err}
	}
	return article, nil
}

func (s *articleService) storeCover(upload *models.Upload) (string, error) {
	return s.files.Save(coverFilename(upload), upload.Data)
}

// coverFilename builds a URL-safe unique name from the uploaded file:
// sanitized original base, a uniqueness token, and the detected extension.
func coverFilename(upload *models.Upload) string {
	base := strings.TrimSuffix(filepath.Base(upload.Filename), filepath.Ext(upload.Filename))
	return slug.Make(base) + "-" + uuid.NewString() + detectExtension(upload)
}

func detectExtension(upload *models.Upload) string {
	switch http.DetectContentType(upload.Data) {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return strings.ToLower(filepath.Ext(upload.Filename))
}

func parsePublicationDate(raw string) (time.Time, error) {
	var err error
	for _, layout := range publicationDateLayouts {
		var parsed time.Time
		if parsed, err = time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, err
}
