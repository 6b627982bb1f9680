package handlers

import (
	"net/http"
	"strconv"

	"blog-article-api/helper"
	"blog-article-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		helper:         &helper.HTTPHelper{},
	}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	req, upload := bindCreateRequest(c)

	article, err := h.articleService.Create(req, upload)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendCreated(c, article.ID, "article created")
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	summaries, err := h.articleService.List()
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := articleID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article ID"})
		return
	}

	detail, err := h.articleService.Show(id)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := articleID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article ID"})
		return
	}

	req, upload := bindUpdateRequest(c)

	if err := h.articleService.Update(id, req, upload); err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendNoContent(c)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := articleID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article ID"})
		return
	}

	if err := h.articleService.Delete(id); err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendNoContent(c)
}

func articleID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
