package models

import (
	"encoding/json"
	"time"
)

// Comment represents a comment on an article
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	ArticleID int       `json:"article_id" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewComment is the request body for POST /api/articles/:id/comments
type NewComment struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// VoteUpdate is the request body for the PATCH endpoints. IncVotes is kept
// raw so that absent, falsy and malformed values can be told apart.
type VoteUpdate struct {
	IncVotes json.RawMessage `json:"inc_votes"`
}
