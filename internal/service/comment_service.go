package service

import (
	"context"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
	log      zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(comments repository.CommentRepository, articles repository.ArticleRepository, log zerolog.Logger) *commentService {
	return &commentService{
		comments: comments,
		articles: articles,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// ListArticleComments returns an article's comments. The article lookup
// runs next to the comment query so that an unknown article is a 404 while
// an article without comments is an empty list.
func (s *commentService) ListArticleComments(ctx context.Context, articleID string) ([]models.Comment, error) {
	id, err := validation.ParseID(articleID)
	if err != nil {
		return nil, err
	}

	scoped, err := withParent(ctx,
		func(ctx context.Context) (bool, error) { return s.articles.Exists(ctx, id) },
		func(ctx context.Context) ([]models.Comment, error) { return s.comments.ListByArticle(ctx, id) },
	)
	if err != nil {
		return nil, err
	}
	return scoped.Unwrap()
}

// CreateComment validates and stores a comment on an article
func (s *commentService) CreateComment(ctx context.Context, articleID string, comment *models.NewComment) (*models.Comment, error) {
	id, err := validation.ParseID(articleID)
	if err != nil {
		return nil, err
	}

	if errs := validation.ValidateNewComment(comment); len(errs) > 0 {
		s.log.Debug().Interface("errors", errs).Msg("Rejected comment")
		return nil, apperror.ErrBadRequest
	}

	created, err := s.comments.Create(ctx, id, comment)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("comment_id", created.CommentID).
		Int("article_id", created.ArticleID).
		Str("author", created.Author).
		Msg("Comment created")
	return created, nil
}

// DeleteComment removes a comment
func (s *commentService) DeleteComment(ctx context.Context, id string) error {
	commentID, err := validation.ParseID(id)
	if err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}

	s.log.Info().Int("comment_id", commentID).Msg("Comment deleted")
	return nil
}

// UpdateCommentVotes applies inc_votes with the same no-op rule as articles
func (s *commentService) UpdateCommentVotes(ctx context.Context, id string, update *models.VoteUpdate) (*models.Comment, error) {
	commentID, err := validation.ParseID(id)
	if err != nil {
		return nil, err
	}

	delta, present, err := validation.ParseVoteDelta(update.IncVotes)
	if err != nil {
		return nil, err
	}
	if !present {
		return s.comments.GetByID(ctx, commentID)
	}
	return s.comments.IncrementVotes(ctx, commentID, delta)
}
