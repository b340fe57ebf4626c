package service

import (
	"context"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

type topicService struct {
	topics repository.TopicRepository
	log    zerolog.Logger
}

func newTopicService(topics repository.TopicRepository, log zerolog.Logger) *topicService {
	return &topicService{
		topics: topics,
		log:    log.With().Str("service", "topic").Logger(),
	}
}

func (s *topicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topics.List(ctx)
}

func (s *topicService) CreateTopic(ctx context.Context, topic *models.Topic) (*models.Topic, error) {
	if errs := validation.ValidateTopic(topic); len(errs) > 0 {
		s.log.Debug().Interface("errors", errs).Msg("Rejected topic")
		return nil, apperror.ErrBadRequest
	}

	created, err := s.topics.Create(ctx, topic)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("slug", created.Slug).Msg("Topic created")
	return created, nil
}
