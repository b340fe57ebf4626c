package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services) *ArticleHandler {
	return &ArticleHandler{services: services}
}

// ListArticles handles GET /api/articles
// Supports ?topic=, ?sort_by= and ?order=; any other parameter is rejected.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.services.Article.ListArticles(c.Request.Context(), firstValues(c.Request.URL.Query()))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.services.Article.GetArticle(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// CreateArticle handles POST /api/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.NewArticle
	if !bindJSON(c, &req) {
		return
	}

	article, err := h.services.Article.CreateArticle(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// UpdateArticleVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) UpdateArticleVotes(c *gin.Context) {
	var req models.VoteUpdate
	if !bindJSON(c, &req) {
		return
	}

	article, err := h.services.Article.UpdateArticleVotes(c.Request.Context(), c.Param("article_id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}
