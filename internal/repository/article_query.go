package repository

import (
	"fmt"
	"strings"

	"github.com/news-api/internal/apperror"
)

// Query parameters accepted by GET /api/articles
const (
	ParamTopic  = "topic"
	ParamSortBy = "sort_by"
	ParamOrder  = "order"
)

// Defaults applied when the listing query omits sort_by or order
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "DESC"
)

// SortableArticleColumns lists the article columns the listing may be ordered by
var SortableArticleColumns = []string{
	"title", "topic", "author", "body", "created_at", "votes", "article_img_url",
}

// ArticleQueryConfig holds the allow-lists the article listing validates
// against. Topics comes from configuration rather than the topics table, so
// a freshly created topic is not filterable until it is configured.
type ArticleQueryConfig struct {
	Topics      []string
	SortColumns []string
}

// NewArticleQueryConfig returns a config for the given topic allow-list and
// the default sortable columns
func NewArticleQueryConfig(topics []string) ArticleQueryConfig {
	return ArticleQueryConfig{
		Topics:      append([]string(nil), topics...),
		SortColumns: append([]string(nil), SortableArticleColumns...),
	}
}

// ArticleListParams is a validated article listing request
type ArticleListParams struct {
	Topic  string // empty means no filter
	SortBy string
	Order  string
}

// Parse validates raw query parameters. Unknown keys are rejected before any
// value is looked at.
func (c ArticleQueryConfig) Parse(raw map[string]string) (ArticleListParams, error) {
	for key := range raw {
		switch key {
		case ParamTopic, ParamSortBy, ParamOrder:
		default:
			return ArticleListParams{}, apperror.ErrBadRequest
		}
	}

	params := ArticleListParams{SortBy: DefaultSortBy, Order: DefaultOrder}

	if topic, ok := raw[ParamTopic]; ok {
		if !contains(c.Topics, topic) {
			return ArticleListParams{}, apperror.ErrBadRequest
		}
		params.Topic = topic
	}

	if sortBy, ok := raw[ParamSortBy]; ok {
		if !contains(c.SortColumns, sortBy) {
			return ArticleListParams{}, apperror.ErrBadRequest
		}
		params.SortBy = sortBy
	}

	if order, ok := raw[ParamOrder]; ok {
		if order != "ASC" && order != "DESC" {
			return ArticleListParams{}, apperror.ErrBadRequest
		}
		params.Order = order
	}

	return params, nil
}

// SQL renders the listing query. SortBy and Order are interpolated, so they
// must have come through Parse; the topic is always a bind parameter.
func (p ArticleListParams) SQL() (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)

	sb.WriteString(`
		SELECT a.article_id, a.title, a.topic, a.author, a.created_at, a.votes, a.article_img_url,
			COUNT(c.comment_id)::INT AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id`)

	if p.Topic != "" {
		args = append(args, p.Topic)
		fmt.Fprintf(&sb, "\n\t\tWHERE a.topic = $%d", len(args))
	}

	fmt.Fprintf(&sb, "\n\t\tGROUP BY a.article_id\n\t\tORDER BY a.%s %s", p.SortBy, p.Order)

	return sb.String(), args
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
