package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
)

// TopicHandler handles topic endpoints
type TopicHandler struct {
	services *service.Services
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(services *service.Services) *TopicHandler {
	return &TopicHandler{services: services}
}

// ListTopics handles GET /api/topics
func (h *TopicHandler) ListTopics(c *gin.Context) {
	topics, err := h.services.Topic.ListTopics(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// CreateTopic handles POST /api/topics
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var req models.Topic
	if !bindJSON(c, &req) {
		return
	}

	topic, err := h.services.Topic.CreateTopic(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topic": topic})
}
