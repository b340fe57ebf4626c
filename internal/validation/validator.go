package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ParseID parses an integer path identifier. Tokens that are not
// integer-shaped yield ErrInvalidParameter. Integers outside the INT4 range
// of the id columns can never match a row and yield ErrNotFound.
func ParseID(raw string) (int, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, apperror.ErrNotFound
		}
		return 0, apperror.ErrInvalidParameter
	}
	return int(id), nil
}

// ParseVoteDelta interprets the raw inc_votes value of a PATCH body.
//
// present is false when the value is absent or falsy (null, false, 0, ""),
// which callers treat as "no change requested". Integers and
// integer-shaped strings are accepted; anything else is ErrInvalidParameter.
func ParseVoteDelta(raw json.RawMessage) (delta int, present bool, err error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, false, apperror.ErrInvalidParameter
	}

	switch val := v.(type) {
	case nil:
		return 0, false, nil
	case bool:
		if !val {
			return 0, false, nil
		}
		return 0, false, apperror.ErrInvalidParameter
	case json.Number:
		if n, err := strconv.ParseInt(val.String(), 10, 32); err == nil {
			if n == 0 {
				return 0, false, nil
			}
			return int(n), true, nil
		}
		if f, err := val.Float64(); err == nil && f == 0 {
			return 0, false, nil
		}
		return 0, false, apperror.ErrInvalidParameter
	case string:
		if val == "" {
			return 0, false, nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 32)
		if err != nil {
			return 0, false, apperror.ErrInvalidParameter
		}
		return int(n), true, nil
	default:
		return 0, false, apperror.ErrInvalidParameter
	}
}

// ValidateNewArticle checks the required fields of an article submission
func ValidateNewArticle(article *models.NewArticle) []ValidationError {
	var errs []ValidationError
	errs = required(errs, "title", article.Title)
	errs = required(errs, "topic", article.Topic)
	errs = required(errs, "author", article.Author)
	errs = required(errs, "body", article.Body)
	return errs
}

// ValidateNewComment checks the required fields of a comment submission
func ValidateNewComment(comment *models.NewComment) []ValidationError {
	var errs []ValidationError
	errs = required(errs, "username", comment.Username)
	errs = required(errs, "body", comment.Body)
	return errs
}

// ValidateTopic checks the required fields of a topic submission
func ValidateTopic(topic *models.Topic) []ValidationError {
	var errs []ValidationError
	errs = required(errs, "slug", topic.Slug)
	errs = required(errs, "description", topic.Description)
	return errs
}

func required(errs []ValidationError, field, value string) []ValidationError {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, ValidationError{Field: field, Message: field + " is required"})
	}
	return errs
}
