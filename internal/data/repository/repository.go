package repository

import (
	"movie-review/pkg/backend"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type Repository struct {
	MovieReview MovieReviewRepository
	Session     SessionRepository
}

func NewRepository(client backend.Iface, config utils.SessionConfig, factory SessionFactory, log *zap.Logger) *Repository {
	return &Repository{
		MovieReview: NewMovieReviewRepository(client, log),
		Session:     NewSessionRepository(config, factory, log),
	}
}
