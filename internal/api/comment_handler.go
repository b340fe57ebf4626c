package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services) *CommentHandler {
	return &CommentHandler{services: services}
}

// ListArticleComments handles GET /api/articles/:article_id/comments
func (h *CommentHandler) ListArticleComments(c *gin.Context) {
	comments, err := h.services.Comment.ListArticleComments(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment handles POST /api/articles/:article_id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req models.NewComment
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.services.Comment.CreateComment(c.Request.Context(), c.Param("article_id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.services.Comment.DeleteComment(c.Request.Context(), c.Param("comment_id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateCommentVotes handles PATCH /api/comments/:comment_id
func (h *CommentHandler) UpdateCommentVotes(c *gin.Context) {
	var req models.VoteUpdate
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.services.Comment.UpdateCommentVotes(c.Request.Context(), c.Param("comment_id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}
