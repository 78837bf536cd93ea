// Package interest содержит бизнес-логику реестра заявок на аренду.
package interest

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/rental-housing/internal/models"
)

// Repository определяет методы работы с заявками в хранилище.
type Repository interface {
	// CreateInterest сохраняет заявку и возвращает её ID.
	CreateInterest(ctx context.Context, doc models.Document) (string, error)
	// ListInterests возвращает все заявки.
	ListInterests(ctx context.Context) ([]models.Document, error)
}

// Service реализует операции реестра заявок. Заявки никогда не обновляются
// и не удаляются, дедупликации по пользователю и объявлению нет.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Register безусловно сохраняет заявку и возвращает её ID.
func (s *Service) Register(ctx context.Context, doc models.Document) (string, error) {
	id, err := s.repo.CreateInterest(ctx, doc)
	if err != nil {
		return "", err
	}
	s.log.Info("registered interest", slog.String("id", id))
	return id, nil
}

// List возвращает все заявки в порядке обхода хранилища.
func (s *Service) List(ctx context.Context) ([]models.Document, error) {
	result, err := s.repo.ListInterests(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []models.Document{}
	}
	return result, nil
}
