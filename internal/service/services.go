package service

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// TopicService defines the interface for topic operations
type TopicService interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
	CreateTopic(ctx context.Context, topic *models.Topic) (*models.Topic, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	ListArticles(ctx context.Context, query map[string]string) ([]models.ArticleSummary, error)
	GetArticle(ctx context.Context, id string) (*models.Article, error)
	CreateArticle(ctx context.Context, article *models.NewArticle) (*models.Article, error)
	UpdateArticleVotes(ctx context.Context, id string, update *models.VoteUpdate) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListArticleComments(ctx context.Context, articleID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, articleID string, comment *models.NewComment) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	UpdateCommentVotes(ctx context.Context, id string, update *models.VoteUpdate) (*models.Comment, error)
}

// UserService defines the interface for user operations
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	Article ArticleService
	Comment CommentService
	User    UserService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, queryCfg repository.ArticleQueryConfig, log zerolog.Logger) *Services {
	return &Services{
		Topic:   newTopicService(repos.Topic, log),
		Article: newArticleService(repos.Article, queryCfg, log),
		Comment: newCommentService(repos.Comment, repos.Article, log),
		User:    newUserService(repos.User),
	}
}
