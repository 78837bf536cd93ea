// Package getprofile реализует HTTP-обработчик выдачи профиля учетной записи.
//
// Учетная запись адресуется email в query-параметре; в ответ попадает
// только объект profileData.
package getprofile

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/rental-housing/internal/http/response"
	"github.com/magabrotheeeer/rental-housing/internal/lib/sl"
	"github.com/magabrotheeeer/rental-housing/internal/models"
	"github.com/magabrotheeeer/rental-housing/internal/storage"
)

// Handler обрабатывает запросы на чтение профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения профиля.
type Service interface {
	GetProfile(ctx context.Context, email string) (models.Profile, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Профиль пользователя
// @Description Возвращает объект profileData учетной записи по email.
// @Tags Accounts
// @Produce json
// @Param email query string true "Email учетной записи"
// @Success 200 {object} map[string]any "Профиль пользователя"
// @Failure 400 {object} response.Response "Не указан email"
// @Failure 404 {object} response.Response "Пользователь не найден"
// @Failure 500 {object} response.Response "Ошибка сервера"
// @Router /get-profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account.getprofile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := r.URL.Query().Get("email")
	if email == "" {
		log.Error("email query parameter is missing")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("email is required"))
		return
	}

	profile, err := h.service.GetProfile(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("user not found", slog.String("email", email))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("User not found"))
			return
		}
		log.Error("failed to fetch profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to fetch user profile"))
		return
	}

	log.Info("profile fetched", slog.String("email", email))
	render.JSON(w, r, map[string]any{
		"status":      true,
		"userProfile": profile,
	})
}
