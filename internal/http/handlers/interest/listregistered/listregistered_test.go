package listregistered

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/rental-housing/internal/models"
)

// Мок сервиса с методом List
type InterestServiceMock struct {
	mock.Mock
}

func (m *InterestServiceMock) List(ctx context.Context) ([]models.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestListRegisteredHandler_ServeHTTP(t *testing.T) {
	serviceMock := new(InterestServiceMock)
	logger := newNoopLogger()

	handler := New(logger, serviceMock)

	tests := []struct {
		name           string
		mockDocs       []models.Document
		mockErr        error
		wantStatusCode int
		wantBody       string
	}{
		{
			name: "registry with documents",
			mockDocs: []models.Document{
				{"email": "user1@example.com"},
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"success":true,"message":"Successfully fetched registered users","data":[{"email":"user1@example.com"}]}`,
		},
		{
			name:           "empty registry",
			mockDocs:       []models.Document{},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"success":true,"message":"Successfully fetched registered users","data":[]}`,
		},
		{
			name:           "service error",
			mockErr:        errors.New("storage error"),
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       `{"success":false,"message":"Internal Server Error","error":"failed to fetch registered users"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock.ExpectedCalls = nil
			serviceMock.Calls = nil

			serviceMock.On("List", mock.Anything).
				Return(tt.mockDocs, tt.mockErr).Once()

			req := httptest.NewRequest(http.MethodGet, "/registered-users", nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())

			serviceMock.AssertExpectations(t)
		})
	}
}
