package property

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/rental-housing/internal/models"
	"github.com/magabrotheeeer/rental-housing/internal/storage"
)

const testID = "507f1f77bcf86cd799439011"

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ListProperties(ctx context.Context) ([]models.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *RepoMock) CreateProperty(ctx context.Context, doc models.Document) (string, error) {
	args := m.Called(ctx, doc)
	return args.String(0), args.Error(1)
}

func (m *RepoMock) ReadProperty(ctx context.Context, id primitive.ObjectID) (models.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Document), args.Error(1)
}

func (m *RepoMock) UpdateProperty(ctx context.Context, id primitive.ObjectID, partial models.Document) (int64, error) {
	args := m.Called(ctx, id, partial)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepoMock) RemoveProperty(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newTestService(repo *RepoMock, cache *CacheMock) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(repo, cache, logger)
}

func TestList_CacheMiss(t *testing.T) {
	docs := []models.Document{{"title": "Flat", "price": 500}}

	repo := new(RepoMock)
	repo.On("ListProperties", mock.Anything).Return(docs, nil)
	cache := new(CacheMock)
	cache.On("Get", "properties:all", mock.Anything).Return(false, nil)
	cache.On("Set", "properties:all", docs, time.Hour).Return(nil)

	svc := newTestService(repo, cache)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, docs, got)
	cache.AssertExpectations(t)
}

func TestList_CacheHit(t *testing.T) {
	docs := []models.Document{{"title": "Flat"}}

	repo := new(RepoMock)
	cache := new(CacheMock)
	cache.On("Get", "properties:all", mock.Anything).
		Run(func(args mock.Arguments) {
			ptr := args.Get(1).(*[]models.Document)
			*ptr = docs
		}).
		Return(true, nil)

	svc := newTestService(repo, cache)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, docs, got)
	repo.AssertNotCalled(t, "ListProperties", mock.Anything)
}

func TestList_EmptyStoreGivesEmptySlice(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListProperties", mock.Anything).Return(nil, nil)
	cache := new(CacheMock)
	cache.On("Get", "properties:all", mock.Anything).Return(false, nil)
	cache.On("Set", "properties:all", mock.Anything, time.Hour).Return(nil)

	svc := newTestService(repo, cache)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	// пустой каталог это [], а не null
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAdd_InvalidatesListCache(t *testing.T) {
	doc := models.Document{"title": "Flat"}

	repo := new(RepoMock)
	repo.On("CreateProperty", mock.Anything, doc).Return(testID, nil)
	cache := new(CacheMock)
	cache.On("Invalidate", "properties:all").Return(nil)

	svc := newTestService(repo, cache)
	id, err := svc.Add(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, testID, id)
	cache.AssertExpectations(t)
}

func TestRead_InvalidID(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)

	svc := newTestService(repo, cache)
	doc, err := svc.Read(context.Background(), "not-a-hex-id")

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, storage.ErrInvalidID)
	repo.AssertNotCalled(t, "ReadProperty", mock.Anything, mock.Anything)
}

func TestRead_CacheMissThenStore(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(testID)
	require.NoError(t, err)
	doc := models.Document{"title": "Flat"}

	repo := new(RepoMock)
	repo.On("ReadProperty", mock.Anything, oid).Return(doc, nil)
	cache := new(CacheMock)
	cache.On("Get", "property:"+testID, mock.Anything).Return(false, nil)
	cache.On("Set", "property:"+testID, doc, time.Hour).Return(nil)

	svc := newTestService(repo, cache)
	got, err := svc.Read(context.Background(), testID)

	require.NoError(t, err)
	assert.Equal(t, doc, got)
	cache.AssertExpectations(t)
}

func TestRead_AbsentDocumentIsNotAnError(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(testID)
	require.NoError(t, err)

	repo := new(RepoMock)
	repo.On("ReadProperty", mock.Anything, oid).Return(nil, nil)
	cache := new(CacheMock)
	cache.On("Get", "property:"+testID, mock.Anything).Return(false, nil)

	svc := newTestService(repo, cache)
	got, err := svc.Read(context.Background(), testID)

	assert.NoError(t, err)
	assert.Nil(t, got)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate(t *testing.T) {
	partial := models.Document{"price": 550}

	tests := []struct {
		name    string
		matched int64
		wantErr error
	}{
		{name: "успешное обновление", matched: 1, wantErr: nil},
		{name: "объявление не найдено", matched: 0, wantErr: storage.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oid, err := primitive.ObjectIDFromHex(testID)
			require.NoError(t, err)

			repo := new(RepoMock)
			repo.On("UpdateProperty", mock.Anything, oid, partial).Return(tt.matched, nil)
			cache := new(CacheMock)
			cache.On("Invalidate", mock.Anything).Return(nil)

			svc := newTestService(repo, cache)
			err = svc.Update(context.Background(), testID, partial)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				cache.AssertNotCalled(t, "Invalidate", mock.Anything)
			} else {
				assert.NoError(t, err)
				cache.AssertCalled(t, "Invalidate", "properties:all")
				cache.AssertCalled(t, "Invalidate", "property:"+testID)
			}
		})
	}
}

func TestUpdate_InvalidID(t *testing.T) {
	svc := newTestService(new(RepoMock), new(CacheMock))
	err := svc.Update(context.Background(), "bad", models.Document{"price": 1})
	assert.ErrorIs(t, err, storage.ErrInvalidID)
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name    string
		deleted int64
	}{
		{name: "документ удален", deleted: 1},
		{name: "документа не было", deleted: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oid, err := primitive.ObjectIDFromHex(testID)
			require.NoError(t, err)

			repo := new(RepoMock)
			repo.On("RemoveProperty", mock.Anything, oid).Return(tt.deleted, nil)
			cache := new(CacheMock)
			cache.On("Invalidate", mock.Anything).Return(nil)

			svc := newTestService(repo, cache)
			deleted, err := svc.Remove(context.Background(), testID)

			// отсутствие документа ошибкой не считается
			require.NoError(t, err)
			assert.Equal(t, tt.deleted, deleted)
			cache.AssertCalled(t, "Invalidate", "properties:all")
		})
	}
}

func TestRemove_StoreError(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(testID)
	require.NoError(t, err)

	repo := new(RepoMock)
	repo.On("RemoveProperty", mock.Anything, oid).Return(int64(0), errors.New("connection reset"))
	cache := new(CacheMock)

	svc := newTestService(repo, cache)
	_, err = svc.Remove(context.Background(), testID)

	assert.Error(t, err)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}
