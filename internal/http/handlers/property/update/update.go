// Package update реализует HTTP-обработчик для частичного обновления объявления.
//
// Поля из тела запроса накладываются на существующий документ (перезапись
// на уровне полей, не замена целиком).
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/rental-housing/internal/http/response"
	"github.com/magabrotheeeer/rental-housing/internal/lib/sl"
	"github.com/magabrotheeeer/rental-housing/internal/models"
	"github.com/magabrotheeeer/rental-housing/internal/storage"
)

// Handler обрабатывает запросы на обновление объявления.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики обновления объявления.
type Service interface {
	Update(ctx context.Context, id string, partial models.Document) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить объявление
// @Description Накладывает переданные поля на существующее объявление.
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "ID объявления"
// @Param request body models.Document true "Обновляемые поля"
// @Success 200 {object} response.Response "Подтверждение обновления"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 404 {object} response.Response "Объявление не найдено"
// @Failure 500 {object} response.Response "Ошибка хранилища"
// @Router /update-property/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.property.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var partial models.Document
	if err := render.DecodeJSON(r.Body, &partial); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded")

	id := chi.URLParam(r, "id")

	err := h.service.Update(r.Context(), id, partial)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Error("property not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Property not found"))
		case errors.Is(err, storage.ErrInvalidID):
			log.Error("invalid property id", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("invalid property id"))
		default:
			log.Error("failed to update property", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to update property"))
		}
		return
	}

	log.Info("property updated", slog.String("id", id))
	render.JSON(w, r, response.OKWithMessage("Property updated successfully"))
}
