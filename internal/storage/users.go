package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/rental-housing/internal/models"
)

// CreateUser сохраняет новую учетную запись и возвращает hex сгенерированного ID.
// Уникальность email хранилищем не обеспечивается, проверка выполняется
// на уровне сервиса до вставки.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}
	return oid.Hex(), nil
}

// GetUserByEmail возвращает учетную запись по email или ErrNotFound.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// UpdateUserProfile целиком заменяет объект profileData учетной записи,
// найденной по ключу (ID хранилища или email). Возвращает количество
// найденных документов.
func (s *Storage) UpdateUserProfile(ctx context.Context, key models.UserKey, profile models.Profile) (int64, error) {
	const op = "storage.UpdateUserProfile"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var filter bson.M
	switch {
	case key.ID != "":
		oid, err := ParseID(key.ID)
		if err != nil {
			return 0, err
		}
		filter = bson.M{"_id": oid}
	case key.Email != "":
		filter = bson.M{"email": key.Email}
	default:
		return 0, fmt.Errorf("%s: empty user key", op)
	}

	res, err := s.users.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"profileData": profile}})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.MatchedCount, nil
}
