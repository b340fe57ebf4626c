package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

const articleColumns = `a.article_id, a.title, a.topic, a.author, a.body, a.created_at, a.votes, a.article_img_url`

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db  *database.DB
	now func() time.Time
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db, now: time.Now}
}

// List runs the validated listing query
func (r *articleRepo) List(ctx context.Context, params ArticleListParams) ([]models.ArticleSummary, error) {
	query, args := params.SQL()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]models.ArticleSummary, 0)
	for rows.Next() {
		var a models.ArticleSummary
		if err := rows.Scan(
			&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.CreatedAt,
			&a.Votes, &a.ArticleImgURL, &a.CommentCount,
		); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetByID retrieves an article with its comment count
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	query := `
		SELECT ` + articleColumns + `, COUNT(c.comment_id)::INT AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		WHERE a.article_id = $1
		GROUP BY a.article_id
	`

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return article, nil
}

// Exists checks if an article with the given ID exists
func (r *articleRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", id).Scan(&exists)
	return exists, err
}

// Create inserts a new article. Votes start at zero and created_at is
// assigned here, whatever the caller sent.
func (r *articleRepo) Create(ctx context.Context, article *models.NewArticle) (*models.Article, error) {
	imgURL := article.ArticleImgURL
	if imgURL == "" {
		imgURL = models.DefaultArticleImgURL
	}

	query := `
		INSERT INTO articles AS a (title, topic, author, body, created_at, votes, article_img_url)
		VALUES ($1, $2, $3, $4, $5, 0, $6)
		RETURNING ` + articleColumns + `, 0 AS comment_count
	`
	created, err := scanArticle(r.db.QueryRowContext(ctx, query,
		article.Title, article.Topic, article.Author, article.Body, r.now().UTC(), imgURL,
	))
	if err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}
	return created, nil
}

// IncrementVotes atomically adds delta to the article's votes
func (r *articleRepo) IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	query := `
		WITH a AS (
			UPDATE articles SET votes = votes + $1 WHERE article_id = $2
			RETURNING *
		)
		SELECT ` + articleColumns + `,
			(SELECT COUNT(*) FROM comments c WHERE c.article_id = a.article_id)::INT AS comment_count
		FROM a
	`

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, delta, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update article %d votes: %w", id, err)
	}
	return article, nil
}

func scanArticle(row *sql.Row) (*models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
