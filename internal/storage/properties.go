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

// ListProperties возвращает все объявления в порядке обхода коллекции.
func (s *Storage) ListProperties(ctx context.Context) ([]models.Document, error) {
	const op = "storage.ListProperties"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cursor, err := s.properties.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []models.Document
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateProperty вставляет объявление как есть и возвращает hex сгенерированного ID.
func (s *Storage) CreateProperty(ctx context.Context, doc models.Document) (string, error) {
	const op = "storage.CreateProperty"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.properties.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}
	return oid.Hex(), nil
}

// ReadProperty возвращает объявление по ID. Отсутствие документа
// не считается ошибкой: возвращается (nil, nil).
func (s *Storage) ReadProperty(ctx context.Context, id primitive.ObjectID) (models.Document, error) {
	const op = "storage.ReadProperty"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var result models.Document
	err := s.properties.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateProperty накладывает partial на существующий документ ($set,
// перезапись на уровне полей, не замена документа).
// Возвращает количество найденных по ID документов.
func (s *Storage) UpdateProperty(ctx context.Context, id primitive.ObjectID, partial models.Document) (int64, error) {
	const op = "storage.UpdateProperty"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.properties.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": partial})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.MatchedCount, nil
}

// RemoveProperty удаляет объявление по ID и возвращает количество удалённых документов.
// Отсутствие документа от успешного удаления на этом уровне не отличается.
func (s *Storage) RemoveProperty(ctx context.Context, id primitive.ObjectID) (int64, error) {
	const op = "storage.RemoveProperty"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.properties.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.DeletedCount, nil
}
