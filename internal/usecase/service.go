package usecase

import (
	"movie-review/internal/data/repository"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Create CreateService
	Read   ReadService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Create: NewCreateService(repo, config.View, log),
		Read:   NewReadService(repo, config.View, log),
	}
}
