package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// Store errors raised by the mocks, shaped like the ones PostgreSQL returns
var (
	ErrForeignKey = &pq.Error{Code: "23503", Message: "violates foreign key constraint"}
	ErrUnique     = &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
)

// MockStore is an in-memory stand-in for the database shared by the mock
// repositories. It enforces the same foreign keys as the schema.
type MockStore struct {
	mu sync.Mutex

	Topics   []models.Topic
	Users    []models.User
	Articles map[int]*models.Article
	Comments map[int]*models.Comment

	nextArticleID int
	nextCommentID int
	now           time.Time

	// Err, when set, is returned by every repository call
	Err error
}

// NewMockStore creates an empty store
func NewMockStore() *MockStore {
	return &MockStore{
		Articles:      make(map[int]*models.Article),
		Comments:      make(map[int]*models.Comment),
		nextArticleID: 1,
		nextCommentID: 1,
		now:           time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Repositories exposes the store through the repository interfaces
func (s *MockStore) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Topic:   &MockTopicRepository{s: s},
		Article: &MockArticleRepository{s: s},
		Comment: &MockCommentRepository{s: s},
		User:    &MockUserRepository{s: s},
	}
}

// Seed loads a small data set: three topics (paper has no articles), four
// users, three articles and four comments, all on article 1 except one on 3.
func (s *MockStore) Seed() *MockStore {
	s.Topics = []models.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "cats", Description: "Not dogs"},
		{Slug: "paper", Description: "what books are made of"},
	}
	s.Users = []models.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://avatars/butter_bridge.png"},
		{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars/icellusedkars.png"},
		{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars/rogersop.png"},
		{Username: "lurker", Name: "do_nothing", AvatarURL: "https://avatars/lurker.png"},
	}

	base := time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)
	s.addArticle(models.Article{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge",
		Body: "I find this existence challenging", CreatedAt: base, Votes: 100, ArticleImgURL: "https://img/1"})
	s.addArticle(models.Article{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars",
		Body: "Call me Mitchell.", CreatedAt: base.Add(-48 * time.Hour), ArticleImgURL: "https://img/2"})
	s.addArticle(models.Article{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop",
		Body: "Bastet walks amongst us", CreatedAt: base.Add(24 * time.Hour), Votes: 3, ArticleImgURL: "https://img/3"})

	s.addComment(models.Comment{ArticleID: 1, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose", Votes: 16, CreatedAt: base.Add(time.Hour)})
	s.addComment(models.Comment{ArticleID: 1, Author: "icellusedkars", Body: "The beautiful thing about treasure is that it exists.", Votes: 14, CreatedAt: base.Add(3 * time.Hour)})
	s.addComment(models.Comment{ArticleID: 1, Author: "rogersop", Body: "Replacing the quiet elegance of the dark suit", Votes: -100, CreatedAt: base.Add(2 * time.Hour)})
	s.addComment(models.Comment{ArticleID: 3, Author: "icellusedkars", Body: "I hate streaming noses", CreatedAt: base.Add(30 * time.Hour)})
	return s
}

func (s *MockStore) addArticle(a models.Article) *models.Article {
	a.ArticleID = s.nextArticleID
	s.nextArticleID++
	s.Articles[a.ArticleID] = &a
	return &a
}

func (s *MockStore) addComment(c models.Comment) *models.Comment {
	c.CommentID = s.nextCommentID
	s.nextCommentID++
	s.Comments[c.CommentID] = &c
	return &c
}

func (s *MockStore) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

func (s *MockStore) hasTopic(slug string) bool {
	for _, t := range s.Topics {
		if t.Slug == slug {
			return true
		}
	}
	return false
}

func (s *MockStore) hasUser(username string) bool {
	for _, u := range s.Users {
		if u.Username == username {
			return true
		}
	}
	return false
}

func (s *MockStore) commentCount(articleID int) int {
	n := 0
	for _, c := range s.Comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n
}

func (s *MockStore) article(id int) *models.Article {
	a, ok := s.Articles[id]
	if !ok {
		return nil
	}
	out := *a
	out.CommentCount = s.commentCount(id)
	return &out
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct{ s *MockStore }

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return nil, m.s.Err
	}
	return append([]models.Topic{}, m.s.Topics...), nil
}

func (m *MockTopicRepository) Create(ctx context.Context, topic *models.Topic) (*models.Topic, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return nil, m.s.Err
	}
	if m.s.hasTopic(topic.Slug) {
		return nil, ErrUnique
	}
	m.s.Topics = append(m.s.Topics, *topic)
	created := *topic
	return &created, nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct{ s *MockStore }

func (m *MockArticleRepository) List(ctx context.Context, params repository.ArticleListParams) ([]models.ArticleSummary, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return nil, m.s.Err
	}

	var matched []*models.Article
	for id := range m.s.Articles {
		a := m.s.article(id)
		if params.Topic == "" || a.Topic == params.Topic {
			matched = append(matched, a)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		c := compareArticles(matched[i], matched[j], params.SortBy)
		if params.Order == "ASC" {
			return c < 0
		}
		return c > 0
	})

	out := make([]models.ArticleSummary, 0, len(matched))
	for _, a := range matched {
		out = append(out, models.ArticleSummary{
			ArticleID:     a.ArticleID,
			Title:         a.Title,
			Topic:         a.Topic,
			Author:        a.Author,
			CreatedAt:     a.CreatedAt,
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
			CommentCount:  a.CommentCount,
		})
	}
	return out, nil
}

func compareArticles(a, b *models.Article, column string) int {
	switch column {
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "topic":
		return strings.Compare(a.Topic, b.Topic)
	case "author":
		return strings.Compare(a.Author, b.Author)
	case "body":
		return strings.Compare(a.Body, b.Body)
	case "votes":
		return a.Votes - b.Votes
	case "article_img_url":
		return strings.Compare(a.ArticleImgURL, b.ArticleImgURL)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return nil, m.s.Err
	}
	a := m.s.article(id)
	if a == nil {
		return nil, apperror.ErrNotFound
	}
	return a, nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return false, m.s.Err
	}
	_, ok := m.s.Articles[id]
	return ok, nil
}

func (m *MockArticleRepository) Create(ctx context.Context, in *models.NewArticle) (*models.Article, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return nil, m.s.Err
	}
	if !m.s.hasTopic(in.Topic) || !m.s.hasUser(in.Author) {
		return nil, ErrForeignKey
	}
	img := in.ArticleImgURL
	if img == "" {
		img = models.DefaultArticleImgURL
	}
	a := m.s.addArticle(models.Article{
		Title:         in.Title,
		Topic:         in.Topic,
		Author:        in.Author,
		Body:          in.Body,
		CreatedAt:     m.s.tick(),
		ArticleImgURL: img,
	})
	return m.s.article(a.ArticleID), nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return nil, m.s.Err
	}
	a, ok := m.s.Articles[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	a.Votes += delta
	return m.s.article(id), nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct{ s *MockStore }

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return nil, m.s.Err
	}
	out := make([]models.Comment, 0)
	for _, c := range m.s.Comments {
		if c.ArticleID == articleID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return nil, m.s.Err
	}
	c, ok := m.s.Comments[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, articleID int, in *models.NewComment) (*models.Comment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return nil, m.s.Err
	}
	if _, ok := m.s.Articles[articleID]; !ok || !m.s.hasUser(in.Username) {
		return nil, ErrForeignKey
	}
	c := m.s.addComment(models.Comment{
		ArticleID: articleID,
		Author:    in.Username,
		Body:      in.Body,
		CreatedAt: m.s.tick(),
	})
	out := *c
	return &out, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return m.s.Err
	}
	if _, ok := m.s.Comments[id]; !ok {
		return apperror.ErrNotFound
	}
	delete(m.s.Comments, id)
	return nil
}

func (m *MockCommentRepository) IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return nil, m.s.Err
	}
	c, ok := m.s.Comments[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	c.Votes += delta
	out := *c
	return &out, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct{ s *MockStore }

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return nil, m.s.Err
	}
	return append([]models.User{}, m.s.Users...), nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.Err != nil {
		return nil, m.s.Err
	}
	for _, u := range m.s.Users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, apperror.ErrNotFound
}
