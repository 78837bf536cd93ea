// Package storage реализует хранилище данных на основе MongoDB
// для каталога объявлений, учетных записей пользователей и заявок на аренду.
// Документы адресуются сгенерированными хранилищем ObjectID; схема коллекций
// не контролируется.
package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Ошибки уровня хранилища. Сервисы сопоставляют их через errors.Is,
// обработчики переводят в HTTP-статусы; детали драйвера наружу не выходят.
var (
	// ErrNotFound запись по указанному ключу отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID строка не является корректным идентификатором хранилища.
	ErrInvalidID = errors.New("invalid identifier")
)

// Storage инкапсулирует подключение к MongoDB и методы работы
// с коллекциями объявлений, пользователей и заявок.
type Storage struct {
	Client *mongo.Client

	properties *mongo.Collection
	users      *mongo.Collection
	interests  *mongo.Collection
}

// New создает подключение к MongoDB и привязывает коллекции базы.
func New(ctx context.Context, connectionString, databaseName string) (*Storage, error) {
	const op = "storage.New"

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db := client.Database(databaseName)
	return &Storage{
		Client:     client,
		properties: db.Collection("properties"),
		users:      db.Collection("users"),
		interests:  db.Collection("registered-users"),
	}, nil
}

// CheckStoreReady проверяет готовность хранилища.
func CheckStoreReady(ctx context.Context, storage *Storage) error {
	if err := storage.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("store is not ready: %w", err)
	}
	return nil
}

// Close разрывает соединение с хранилищем.
func (s *Storage) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

// ParseID разбирает строковый идентификатор документа.
// Для некорректной строки возвращает ErrInvalidID.
func ParseID(id string) (primitive.ObjectID, error) {
	const op = "storage.ParseID"
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s: %q: %w", op, id, ErrInvalidID)
	}
	return oid, nil
}
