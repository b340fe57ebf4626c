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

const commentColumns = `comment_id, article_id, author, body, votes, created_at`

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db  *database.DB
	now func() time.Time
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db, now: time.Now}
}

// ListByArticle returns an article's comments, newest first. It cannot tell
// a missing article from one without comments; both give an empty slice.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE article_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments for article %d: %w", articleID, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// GetByID retrieves a comment by ID
func (r *commentRepo) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE comment_id = $1`

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment %d: %w", id, err)
	}
	return comment, nil
}

// Create inserts a new comment. Unknown articles or authors surface as a
// foreign key violation from the store.
func (r *commentRepo) Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	query := `
		INSERT INTO comments (article_id, author, body, votes, created_at)
		VALUES ($1, $2, $3, 0, $4)
		RETURNING ` + commentColumns

	created, err := scanComment(r.db.QueryRowContext(ctx, query,
		articleID, comment.Username, comment.Body, r.now().UTC(),
	))
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return created, nil
}

// Delete removes a comment
func (r *commentRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	if n == 0 {
		return apperror.ErrNotFound
	}
	return nil
}

// IncrementVotes atomically adds delta to the comment's votes
func (r *commentRepo) IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	query := `UPDATE comments SET votes = votes + $1 WHERE comment_id = $2 RETURNING ` + commentColumns

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, delta, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update comment %d votes: %w", id, err)
	}
	return comment, nil
}

func scanComment(row *sql.Row) (*models.Comment, error) {
	var c models.Comment
	if err := row.Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
