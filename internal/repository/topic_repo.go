package repository

import (
	"context"
	"fmt"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// topicRepo is the concrete implementation of TopicRepository
type topicRepo struct {
	db *database.DB
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *database.DB) TopicRepository {
	return &topicRepo{db: db}
}

// List returns every topic
func (r *topicRepo) List(ctx context.Context) ([]models.Topic, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT slug, description FROM topics`)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	topics := make([]models.Topic, 0)
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// Create inserts a topic; a duplicate slug is a unique violation
func (r *topicRepo) Create(ctx context.Context, topic *models.Topic) (*models.Topic, error) {
	var t models.Topic
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO topics (slug, description) VALUES ($1, $2) RETURNING slug, description`,
		topic.Slug, topic.Description,
	).Scan(&t.Slug, &t.Description)
	if err != nil {
		return nil, fmt.Errorf("insert topic: %w", err)
	}
	return &t, nil
}
