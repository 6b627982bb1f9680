package repositories

import (
	"blog-article-api/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetByStatuses(statuses []models.ArticleStatus) ([]models.Article, error)
	Update(article *models.Article) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetByStatuses(statuses []models.ArticleStatus) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("status IN ?", statuses).
		Order("id asc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}
