package models

// TimeFormat is the wire format for article dates.
const TimeFormat = "2006-01-02 15:04:05"

type CreateArticleRequest struct {
	AuthorID        uint     `json:"authorId"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Keywords        []string `json:"keywords"`
	Status          string   `json:"status"`
	PublicationDate string   `json:"publicationDate"`
}

// UpdateArticleRequest carries a partial update. Nil fields were absent
// from the payload and leave the stored value untouched.
type UpdateArticleRequest struct {
	Title           *string   `json:"title"`
	Content         *string   `json:"content"`
	Keywords        *[]string `json:"keywords"`
	Status          *string   `json:"status"`
	PublicationDate *string   `json:"publicationDate"`
}

// Upload is a cover picture read out of a multipart request.
type Upload struct {
	Filename string
	Data     []byte
}

type CreateArticleResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

type ArticleSummary struct {
	ID              uint          `json:"id"`
	Title           string        `json:"title"`
	PublicationDate string        `json:"publicationDate"`
	Status          ArticleStatus `json:"status"`
	Slug            string        `json:"slug"`
}

type ArticleDetail struct {
	ID              uint          `json:"id"`
	AuthorID        uint          `json:"authorId"`
	Title           string        `json:"title"`
	Content         string        `json:"content"`
	Keywords        []string      `json:"keywords"`
	Status          ArticleStatus `json:"status"`
	Slug            string        `json:"slug"`
	PublicationDate string        `json:"publicationDate"`
	CreatedAt       string        `json:"createdAt"`
	CoverPicture    *string       `json:"coverPicture"`
}

func NewArticleSummary(article *Article) ArticleSummary {
	return ArticleSummary{
		ID:              article.ID,
		Title:           article.Title,
		PublicationDate: article.PublicationDate.Format(TimeFormat),
		Status:          article.Status,
		Slug:            article.Slug,
	}
}

func NewArticleDetail(article *Article) ArticleDetail {
	return ArticleDetail{
		ID:              article.ID,
		AuthorID:        article.AuthorID,
		Title:           article.Title,
		Content:         article.Content,
		Keywords:        article.Keywords,
		Status:          article.Status,
		Slug:            article.Slug,
		PublicationDate: article.PublicationDate.Format(TimeFormat),
		CreatedAt:       article.CreatedAt.Format(TimeFormat),
		CoverPicture:    article.CoverPicture,
	}
}
