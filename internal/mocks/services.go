package mocks

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
)

// MockArticleService is a mock implementation of ArticleService. Unset
// funcs return zero values.
type MockArticleService struct {
	ListFunc   func(ctx context.Context, query map[string]string) ([]models.ArticleSummary, error)
	GetFunc    func(ctx context.Context, id string) (*models.Article, error)
	CreateFunc func(ctx context.Context, article *models.NewArticle) (*models.Article, error)
	VotesFunc  func(ctx context.Context, id string, update *models.VoteUpdate) (*models.Article, error)

	// Queries records every query passed to ListArticles
	Queries []map[string]string
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func (m *MockArticleService) ListArticles(ctx context.Context, query map[string]string) ([]models.ArticleSummary, error) {
	m.Queries = append(m.Queries, query)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, query)
	}
	return []models.ArticleSummary{}, nil
}

func (m *MockArticleService) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &models.Article{}, nil
}

func (m *MockArticleService) CreateArticle(ctx context.Context, article *models.NewArticle) (*models.Article, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, article)
	}
	return &models.Article{}, nil
}

func (m *MockArticleService) UpdateArticleVotes(ctx context.Context, id string, update *models.VoteUpdate) (*models.Article, error) {
	if m.VotesFunc != nil {
		return m.VotesFunc(ctx, id, update)
	}
	return &models.Article{}, nil
}

// MockTopicService is a mock implementation of TopicService
type MockTopicService struct {
	ListFunc   func(ctx context.Context) ([]models.Topic, error)
	CreateFunc func(ctx context.Context, topic *models.Topic) (*models.Topic, error)
}

// Verify interface compliance
var _ service.TopicService = (*MockTopicService)(nil)

func (m *MockTopicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Topic{}, nil
}

func (m *MockTopicService) CreateTopic(ctx context.Context, topic *models.Topic) (*models.Topic, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, topic)
	}
	return topic, nil
}
