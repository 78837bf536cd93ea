// Package remove реализует HTTP-обработчик для удаления объявления из каталога.
package remove

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
	"github.com/magabrotheeeer/rental-housing/internal/storage"
)

// Handler обрабатывает запросы на удаление объявления.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления объявления.
type Service interface {
	Remove(ctx context.Context, id string) (int64, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить объявление
// @Description Удаляет объявление по ID. Отсутствие документа от успешного удаления не отличается.
// @Tags Properties
// @Produce json
// @Param id path string true "ID объявления"
// @Success 200 {object} map[string]any "Подтверждение удаления"
// @Failure 404 {object} response.Response "Некорректный ID"
// @Failure 500 {object} response.Response "Ошибка хранилища"
// @Router /delete-property/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.property.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	deleted, err := h.service.Remove(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidID) {
			log.Error("invalid property id", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("invalid property id"))
			return
		}
		log.Error("failed to delete property", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to delete property"))
		return
	}

	log.Info("property deleted", slog.String("id", id), slog.Int64("deleted_count", deleted))
	render.JSON(w, r, map[string]any{
		"acknowledged": true,
		"deletedCount": deleted,
	})
}
