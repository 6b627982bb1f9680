package handlers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"strconv"

	"blog-article-api/models"

	"github.com/gin-gonic/gin"
)

// bindCreateRequest normalizes a create submission into one request shape,
// whether it arrived as a multipart form or a JSON body. A body that cannot
// be decoded yields a zero request, which then fails the required-field
// checks downstream instead of erroring here.
func bindCreateRequest(c *gin.Context) (models.CreateArticleRequest, *models.Upload) {
	if c.ContentType() == "multipart/form-data" {
		return bindCreateForm(c)
	}

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return models.CreateArticleRequest{}, nil
	}
	return req, nil
}

func bindCreateForm(c *gin.Context) (models.CreateArticleRequest, *models.Upload) {
	req := models.CreateArticleRequest{
		Title:           c.PostForm("title"),
		Content:         c.PostForm("content"),
		Keywords:        parseKeywords(c.PostForm("keywords")),
		Status:          c.DefaultPostForm("status", string(models.StatusDraft)),
		PublicationDate: c.PostForm("publicationDate"),
	}

	if raw := c.PostForm("authorId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			req.AuthorID = uint(id)
		}
	}

	return req, formUpload(c, "coverPicture")
}

func bindUpdateRequest(c *gin.Context) (models.UpdateArticleRequest, *models.Upload) {
	if c.ContentType() == "multipart/form-data" {
		return bindUpdateForm(c)
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return models.UpdateArticleRequest{}, nil
	}
	return req, nil
}

// bindUpdateForm keys presence on the form fields: only fields present in
// the submission make it into the partial update.
func bindUpdateForm(c *gin.Context) (models.UpdateArticleRequest, *models.Upload) {
	var req models.UpdateArticleRequest

	if v, ok := c.GetPostForm("title"); ok {
		req.Title = &v
	}
	if v, ok := c.GetPostForm("content"); ok {
		req.Content = &v
	}
	if v, ok := c.GetPostForm("keywords"); ok {
		keywords := parseKeywords(v)
		req.Keywords = &keywords
	}
	if v, ok := c.GetPostForm("status"); ok {
		req.Status = &v
	}
	if v, ok := c.GetPostForm("publicationDate"); ok {
		req.PublicationDate = &v
	}

	return req, formUpload(c, "coverPicture")
}

// parseKeywords decodes the JSON-encoded keywords form field. Absent or
// malformed input falls back to an empty list rather than failing the
// request.
func parseKeywords(raw string) []string {
	if raw == "" {
		return []string{}
	}

	var keywords []string
	if err := json.Unmarshal([]byte(raw), &keywords); err != nil {
		return []string{}
	}
	return keywords
}

func formUpload(c *gin.Context, field string) *models.Upload {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return readUpload(fileHeader)
}

func readUpload(fileHeader *multipart.FileHeader) *models.Upload {
	file, err := fileHeader.Open()
	if err != nil {
		return nil
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil
	}

	return &models.Upload{Filename: fileHeader.Filename, Data: data}
}
