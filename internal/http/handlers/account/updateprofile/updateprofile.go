// Package updateprofile реализует HTTP-обработчик полной замены профиля.
//
// Исторически операция адресует учетную запись двумя способами:
// идентификатором хранилища в пути (/update-profile/{id}) либо email
// в теле запроса (/update-profile). Обе схемы поддерживаются одним
// обработчиком. Объект profileData заменяется целиком, а не сливается.
package updateprofile

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/rental-housing/internal/http/response"
	"github.com/magabrotheeeer/rental-housing/internal/lib/sl"
	"github.com/magabrotheeeer/rental-housing/internal/models"
	"github.com/magabrotheeeer/rental-housing/internal/storage"
)

// Request входные данные обновления профиля. Email используется как ключ
// поиска только при отсутствии идентификатора в пути.
type Request struct {
	Email       string         `json:"email"`
	ProfileData map[string]any `json:"profileData" validate:"required"`
}

// Handler обрабатывает запросы на замену профиля.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики замены профиля.
type Service interface {
	UpdateProfile(ctx context.Context, key models.UserKey, profile models.Profile) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить профиль пользователя
// @Description Целиком заменяет объект profileData учетной записи, найденной по ID из пути или email из тела.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string false "ID учетной записи"
// @Param request body Request true "Новый профиль"
// @Success 200 {object} response.Response "Подтверждение обновления"
// @Failure 400 {object} response.Response "Некорректный JSON или отсутствует ключ поиска"
// @Failure 404 {object} response.Response "Пользователь не найден"
// @Failure 500 {object} response.Response "Ошибка сервера"
// @Router /update-profile/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account.updateprofile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded")

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	var key models.UserKey
	switch {
	case chi.URLParam(r, "id") != "":
		key = models.UserKeyByID(chi.URLParam(r, "id"))
	case req.Email != "":
		key = models.UserKeyByEmail(req.Email)
	default:
		log.Error("no user key in request")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("user id or email is required"))
		return
	}

	err := h.service.UpdateProfile(r.Context(), key, req.ProfileData)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Error("user not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("User not found"))
		case errors.Is(err, storage.ErrInvalidID):
			log.Error("invalid user id", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("invalid user id"))
		default:
			log.Error("failed to update user profile", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to update user profile"))
		}
		return
	}

	log.Info("user profile updated")
	render.JSON(w, r, response.OKWithMessage("User profile updated successfully"))
}
