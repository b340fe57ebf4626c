package repository

import (
	"errors"
	"strings"
	"testing"

	"github.com/news-api/internal/apperror"
)

func testQueryConfig() ArticleQueryConfig {
	return NewArticleQueryConfig([]string{"mitch", "cats", "paper"})
}

func TestArticleQueryConfig_Parse(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]string
		want    ArticleListParams
		wantErr bool
	}{
		{
			name: "defaults",
			raw:  map[string]string{},
			want: ArticleListParams{SortBy: "created_at", Order: "DESC"},
		},
		{
			name: "nil map uses defaults",
			raw:  nil,
			want: ArticleListParams{SortBy: "created_at", Order: "DESC"},
		},
		{
			name: "all recognised parameters",
			raw:  map[string]string{"topic": "cats", "sort_by": "votes", "order": "ASC"},
			want: ArticleListParams{Topic: "cats", SortBy: "votes", Order: "ASC"},
		},
		{
			name: "topic without articles is still allowed",
			raw:  map[string]string{"topic": "paper"},
			want: ArticleListParams{Topic: "paper", SortBy: "created_at", Order: "DESC"},
		},
		{name: "unknown topic", raw: map[string]string{"topic": "dogs"}, wantErr: true},
		{name: "empty topic", raw: map[string]string{"topic": ""}, wantErr: true},
		{name: "unknown sort column", raw: map[string]string{"sort_by": "comment_count"}, wantErr: true},
		{name: "injection in sort column", raw: map[string]string{"sort_by": "votes; DROP TABLE articles"}, wantErr: true},
		{name: "lowercase order", raw: map[string]string{"order": "asc"}, wantErr: true},
		{name: "unknown key alone", raw: map[string]string{"badquery": "x"}, wantErr: true},
		{
			name:    "unknown key with valid parameters",
			raw:     map[string]string{"topic": "cats", "sort_by": "votes", "badquery": "x"},
			wantErr: true,
		},
	}

	cfg := testQueryConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cfg.Parse(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, apperror.ErrBadRequest) {
					t.Fatalf("Expected ErrBadRequest, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewArticleQueryConfig_CopiesLists(t *testing.T) {
	topics := []string{"cats"}
	cfg := NewArticleQueryConfig(topics)
	topics[0] = "dogs"

	if cfg.Topics[0] != "cats" {
		t.Errorf("Config should not alias the caller's slice, got %v", cfg.Topics)
	}
	if len(cfg.SortColumns) != len(SortableArticleColumns) {
		t.Errorf("Expected %d sort columns, got %d", len(SortableArticleColumns), len(cfg.SortColumns))
	}
}

func TestArticleListParams_SQL(t *testing.T) {
	t.Run("without topic", func(t *testing.T) {
		query, args := ArticleListParams{SortBy: "created_at", Order: "DESC"}.SQL()
		if len(args) != 0 {
			t.Errorf("Expected no args, got %v", args)
		}
		if strings.Contains(query, "WHERE") {
			t.Errorf("Expected no WHERE clause:\n%s", query)
		}
		if !strings.Contains(query, "LEFT JOIN comments c ON c.article_id = a.article_id") {
			t.Errorf("Expected comments join:\n%s", query)
		}
		if !strings.Contains(query, "COUNT(c.comment_id)::INT AS comment_count") {
			t.Errorf("Expected comment_count aggregate:\n%s", query)
		}
		if !strings.HasSuffix(query, "ORDER BY a.created_at DESC") {
			t.Errorf("Expected default ordering:\n%s", query)
		}
		if strings.Contains(query, "a.body") {
			t.Errorf("Listing should not select the body:\n%s", query)
		}
	})

	t.Run("with topic", func(t *testing.T) {
		query, args := ArticleListParams{Topic: "mitch", SortBy: "votes", Order: "ASC"}.SQL()
		if len(args) != 1 || args[0] != "mitch" {
			t.Fatalf("Expected topic bind arg, got %v", args)
		}
		if !strings.Contains(query, "WHERE a.topic = $1") {
			t.Errorf("Expected topic filter:\n%s", query)
		}
		if !strings.HasSuffix(query, "ORDER BY a.votes ASC") {
			t.Errorf("Expected votes ASC ordering:\n%s", query)
		}
	})
}
