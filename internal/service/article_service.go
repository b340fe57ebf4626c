package service

import (
	"context"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles repository.ArticleRepository
	queryCfg repository.ArticleQueryConfig
	log      zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(articles repository.ArticleRepository, queryCfg repository.ArticleQueryConfig, log zerolog.Logger) *articleService {
	return &articleService{
		articles: articles,
		queryCfg: queryCfg,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// ListArticles validates the listing query and returns matching articles
func (s *articleService) ListArticles(ctx context.Context, query map[string]string) ([]models.ArticleSummary, error) {
	params, err := s.queryCfg.Parse(query)
	if err != nil {
		s.log.Debug().Interface("query", query).Msg("Rejected article listing query")
		return nil, err
	}
	return s.articles.List(ctx, params)
}

// GetArticle returns a single article with its comment count
func (s *articleService) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	articleID, err := validation.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.articles.GetByID(ctx, articleID)
}

// CreateArticle validates and stores a new article
func (s *articleService) CreateArticle(ctx context.Context, article *models.NewArticle) (*models.Article, error) {
	if errs := validation.ValidateNewArticle(article); len(errs) > 0 {
		s.log.Debug().Interface("errors", errs).Msg("Rejected article")
		return nil, apperror.ErrBadRequest
	}

	created, err := s.articles.Create(ctx, article)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("article_id", created.ArticleID).
		Str("topic", created.Topic).
		Str("author", created.Author).
		Msg("Article created")
	return created, nil
}

// UpdateArticleVotes applies inc_votes. A missing or falsy inc_votes leaves
// the article untouched and returns it as stored. The article lookup runs
// next to the update, and a missing article is reported ahead of an invalid
// inc_votes.
func (s *articleService) UpdateArticleVotes(ctx context.Context, id string, update *models.VoteUpdate) (*models.Article, error) {
	articleID, err := validation.ParseID(id)
	if err != nil {
		return nil, err
	}

	scoped, err := withParent(ctx,
		func(ctx context.Context) (bool, error) { return s.articles.Exists(ctx, articleID) },
		func(ctx context.Context) (*models.Article, error) {
			delta, present, err := validation.ParseVoteDelta(update.IncVotes)
			if err != nil {
				return nil, err
			}
			if !present {
				return s.articles.GetByID(ctx, articleID)
			}
			return s.articles.IncrementVotes(ctx, articleID, delta)
		},
	)
	if err != nil {
		return nil, err
	}
	return scoped.Unwrap()
}
