package register

import (
	"bytes"
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

// Мок сервиса с методом Register
type InterestServiceMock struct {
	mock.Mock
}

func (m *InterestServiceMock) Register(ctx context.Context, doc models.Document) (string, error) {
	args := m.Called(ctx, doc)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	serviceMock := new(InterestServiceMock)
	logger := newNoopLogger()

	handler := New(logger, serviceMock)

	tests := []struct {
		name           string
		requestBody    string
		mockErr        error
		callService    bool
		wantStatusCode int
		wantBody       string
	}{
		{
			name:           "valid registration",
			requestBody:    `{"email":"user1@example.com","propertyId":"507f1f77bcf86cd799439011"}`,
			callService:    true,
			wantStatusCode: http.StatusOK,
			wantBody:       `{"status":"success","message":"Registered successfully"}`,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"status":"error","message":"invalid request body"}`,
		},
		{
			name:           "service error",
			requestBody:    `{"email":"user1@example.com"}`,
			mockErr:        errors.New("storage error"),
			callService:    true,
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       `{"status":"error","message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock.ExpectedCalls = nil
			serviceMock.Calls = nil

			if tt.callService {
				serviceMock.On("Register", mock.Anything, mock.Anything).
					Return("68b1c0ffee0000000000aa01", tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/register-user", bytes.NewReader([]byte(tt.requestBody)))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())

			serviceMock.AssertExpectations(t)
		})
	}
}
