package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/magabrotheeeer/rental-housing/internal/models"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateProperty создает тестовое объявление и возвращает его ID
func (f *TestDataFactory) CreateProperty(t *testing.T, doc models.Document) string {
	id, err := f.storage.CreateProperty(context.Background(), doc)
	require.NoError(t, err)
	return id
}

// CreateUser создает тестовую учетную запись и возвращает её ID
func (f *TestDataFactory) CreateUser(t *testing.T, name, email, passwordHash string, profile models.Profile) string {
	id, err := f.storage.CreateUser(context.Background(), models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Profile:      profile,
	})
	require.NoError(t, err)
	return id
}

// CreateInterest создает тестовую заявку и возвращает её ID
func (f *TestDataFactory) CreateInterest(t *testing.T, doc models.Document) string {
	id, err := f.storage.CreateInterest(context.Background(), doc)
	require.NoError(t, err)
	return id
}

// GetTestPropertyData возвращает стандартные тестовые данные объявления
func GetTestPropertyData() models.Document {
	return models.Document{
		"title":   "Уютная квартира у парка",
		"price":   500,
		"city":    "Казань",
		"rooms":   2,
		"ownerId": uuid.New().String(),
	}
}

// UniqueEmail возвращает уникальный email для тестовой учетной записи
func UniqueEmail() string {
	return fmt.Sprintf("user-%s@example.com", uuid.New().String())
}

// TestVerification содержит общие функции для проверки результатов тестов
type TestVerification struct {
	storage *Storage
}

// NewTestVerification создает новый объект для проверки результатов
func NewTestVerification(storage *Storage) *TestVerification {
	return &TestVerification{storage: storage}
}

// VerifyPropertyCount проверяет количество объявлений в коллекции
func (v *TestVerification) VerifyPropertyCount(t *testing.T, want int64) {
	count, err := v.storage.properties.CountDocuments(context.Background(), map[string]any{})
	require.NoError(t, err)
	require.Equal(t, want, count)
}

// VerifyUserCount проверяет количество учетных записей в коллекции
func (v *TestVerification) VerifyUserCount(t *testing.T, want int64) {
	count, err := v.storage.users.CountDocuments(context.Background(), map[string]any{})
	require.NoError(t, err)
	require.Equal(t, want, count)
}

// setupTestDb поднимает контейнер MongoDB и возвращает хранилище
// с функцией очистки
func setupTestDb(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err, "failed to start container")

	connStr, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err, "failed to get connection string")

	// Пробуем подключиться несколько раз с ретраями
	var storage *Storage
	for range 10 {
		storage, err = New(ctx, connStr, "rental-housing-test")
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "Failed to create storage after retries")

	cleanup := func() {
		if storage != nil {
			_ = storage.Close(ctx)
		}
		_ = testcontainers.TerminateContainer(mongoContainer)
	}

	return storage, cleanup
}
