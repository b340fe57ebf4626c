package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr error
	}{
		{name: "simple id", raw: "1", want: 1},
		{name: "large valid id", raw: "2147483647", want: 2147483647},
		{name: "negative id is integer shaped", raw: "-3", want: -3},
		{name: "word", raw: "banana", wantErr: apperror.ErrInvalidParameter},
		{name: "decimal", raw: "1.5", wantErr: apperror.ErrInvalidParameter},
		{name: "trailing letters", raw: "12abc", wantErr: apperror.ErrInvalidParameter},
		{name: "empty", raw: "", wantErr: apperror.ErrInvalidParameter},
		{name: "beyond int4", raw: "99999999999", wantErr: apperror.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseID(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseVoteDelta(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantDelta   int
		wantPresent bool
		wantErr     bool
	}{
		{name: "absent", raw: ""},
		{name: "null", raw: "null"},
		{name: "zero", raw: "0"},
		{name: "zero float", raw: "0.0"},
		{name: "false", raw: "false"},
		{name: "empty string", raw: `""`},
		{name: "positive", raw: "10", wantDelta: 10, wantPresent: true},
		{name: "negative", raw: "-50", wantDelta: -50, wantPresent: true},
		{name: "integer string", raw: `"7"`, wantDelta: 7, wantPresent: true},
		{name: "word string", raw: `"cat"`, wantErr: true},
		{name: "fraction", raw: "1.5", wantErr: true},
		{name: "true", raw: "true", wantErr: true},
		{name: "object", raw: `{"n":1}`, wantErr: true},
		{name: "array", raw: "[1]", wantErr: true},
		{name: "too large", raw: "99999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, present, err := ParseVoteDelta(json.RawMessage(tt.raw))
			if tt.wantErr {
				if !errors.Is(err, apperror.ErrInvalidParameter) {
					t.Fatalf("Expected ErrInvalidParameter, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if present != tt.wantPresent {
				t.Errorf("present = %v, want %v", present, tt.wantPresent)
			}
			if delta != tt.wantDelta {
				t.Errorf("delta = %d, want %d", delta, tt.wantDelta)
			}
		})
	}
}

func TestValidateNewArticle(t *testing.T) {
	tests := []struct {
		name       string
		article    *models.NewArticle
		wantFields []string
	}{
		{
			name: "valid article without image",
			article: &models.NewArticle{
				Title:  "Living in the shadow of a great man",
				Topic:  "mitch",
				Author: "butter_bridge",
				Body:   "I find this existence challenging",
			},
		},
		{
			name:       "missing everything",
			article:    &models.NewArticle{},
			wantFields: []string{"title", "topic", "author", "body"},
		},
		{
			name: "blank body",
			article: &models.NewArticle{
				Title:  "t",
				Topic:  "cats",
				Author: "icellusedkars",
				Body:   "   ",
			},
			wantFields: []string{"body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateNewArticle(tt.article)
			assertFields(t, errs, tt.wantFields)
		})
	}
}

func TestValidateNewComment(t *testing.T) {
	assertFields(t, ValidateNewComment(&models.NewComment{Username: "rogersop", Body: "nice"}), nil)
	assertFields(t, ValidateNewComment(&models.NewComment{Body: "nice"}), []string{"username"})
	assertFields(t, ValidateNewComment(&models.NewComment{}), []string{"username", "body"})
}

func TestValidateTopic(t *testing.T) {
	assertFields(t, ValidateTopic(&models.Topic{Slug: "dogs", Description: "woof"}), nil)
	assertFields(t, ValidateTopic(&models.Topic{Slug: "dogs"}), []string{"description"})
	assertFields(t, ValidateTopic(&models.Topic{Description: "woof"}), []string{"slug"})
}

func assertFields(t *testing.T, errs []ValidationError, want []string) {
	t.Helper()
	if len(errs) != len(want) {
		t.Fatalf("got %d errors, want %d. Errors: %v", len(errs), len(want), errs)
	}
	for i, field := range want {
		if errs[i].Field != field {
			t.Errorf("error %d: field = %q, want %q", i, errs[i].Field, field)
		}
	}
}
