// Package property содержит бизнес-логику каталога объявлений о сдаче жилья.
package property

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/rental-housing/internal/models"
	"github.com/magabrotheeeer/rental-housing/internal/storage"
)

const (
	listCacheKey = "properties:all"
	cacheTTL     = time.Hour
)

// Repository определяет методы работы с объявлениями в хранилище.
type Repository interface {
	// ListProperties возвращает все объявления.
	ListProperties(ctx context.Context) ([]models.Document, error)
	// CreateProperty вставляет объявление и возвращает его ID.
	CreateProperty(ctx context.Context, doc models.Document) (string, error)
	// ReadProperty возвращает объявление по ID или (nil, nil), если его нет.
	ReadProperty(ctx context.Context, id primitive.ObjectID) (models.Document, error)
	// UpdateProperty накладывает partial на документ, возвращает количество найденных.
	UpdateProperty(ctx context.Context, id primitive.ObjectID, partial models.Document) (int64, error)
	// RemoveProperty удаляет документ, возвращает количество удалённых.
	RemoveProperty(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// Service реализует операции каталога объявлений поверх хранилища и кэша.
// Кэш инвалидируется при каждой мутации, поэтому чтения всегда
// отражают состояние хранилища.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// List возвращает все объявления в порядке обхода хранилища.
func (s *Service) List(ctx context.Context) ([]models.Document, error) {
	var cached []models.Document
	found, err := s.cache.Get(listCacheKey, &cached)
	if err != nil {
		s.log.Warn("cache lookup failed", slog.String("key", listCacheKey), slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	result, err := s.repo.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []models.Document{}
	}

	if err := s.cache.Set(listCacheKey, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache property list", slog.Any("err", err))
	}
	return result, nil
}

// Add вставляет объявление как есть и возвращает сгенерированный хранилищем ID.
func (s *Service) Add(ctx context.Context, doc models.Document) (string, error) {
	id, err := s.repo.CreateProperty(ctx, doc)
	if err != nil {
		return "", err
	}
	s.log.Info("created new property", slog.String("id", id))

	if err := s.cache.Invalidate(listCacheKey); err != nil {
		s.log.Warn("failed to invalidate property list cache", slog.Any("err", err))
	}
	return id, nil
}

// Read возвращает объявление по строковому ID.
// Некорректный ID дает storage.ErrInvalidID; отсутствие документа
// ошибкой не считается — возвращается (nil, nil).
func (s *Service) Read(ctx context.Context, id string) (models.Document, error) {
	oid, err := storage.ParseID(id)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("property:%s", id)
	var cached models.Document
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("cache lookup failed", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	doc, err := s.repo.ReadProperty(ctx, oid)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	if err := s.cache.Set(cacheKey, doc, cacheTTL); err != nil {
		s.log.Warn("failed to cache property", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return doc, nil
}

// Update накладывает partial на существующее объявление (перезапись полей,
// не замена документа). Возвращает storage.ErrNotFound, если документа нет.
func (s *Service) Update(ctx context.Context, id string, partial models.Document) error {
	oid, err := storage.ParseID(id)
	if err != nil {
		return err
	}

	matched, err := s.repo.UpdateProperty(ctx, oid, partial)
	if err != nil {
		return err
	}
	if matched == 0 {
		return storage.ErrNotFound
	}
	s.log.Info("updated property", slog.String("id", id))

	s.invalidate(id)
	return nil
}

// Remove удаляет объявление и возвращает количество удалённых документов.
// Отсутствие документа от успешного удаления не отличается.
func (s *Service) Remove(ctx context.Context, id string) (int64, error) {
	oid, err := storage.ParseID(id)
	if err != nil {
		return 0, err
	}

	deleted, err := s.repo.RemoveProperty(ctx, oid)
	if err != nil {
		return 0, err
	}
	s.log.Info("removed property", slog.String("id", id), slog.Int64("deleted", deleted))

	s.invalidate(id)
	return deleted, nil
}

func (s *Service) invalidate(id string) {
	for _, key := range []string{listCacheKey, fmt.Sprintf("property:%s", id)} {
		if err := s.cache.Invalidate(key); err != nil {
			s.log.Warn("failed to invalidate cache", slog.String("key", key), slog.Any("err", err))
		}
	}
}
