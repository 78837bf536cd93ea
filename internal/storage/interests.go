package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/rental-housing/internal/models"
)

// CreateInterest сохраняет заявку на аренду без какой-либо дедупликации
// и возвращает hex сгенерированного ID.
func (s *Storage) CreateInterest(ctx context.Context, doc models.Document) (string, error) {
	const op = "storage.CreateInterest"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.interests.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListInterests возвращает все заявки в порядке обхода коллекции.
func (s *Storage) ListInterests(ctx context.Context) ([]models.Document, error) {
	const op = "storage.ListInterests"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cursor, err := s.interests.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []models.Document
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
