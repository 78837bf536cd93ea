// Package read реализует HTTP-обработчик для получения объявления по ID.
//
// Исторически этот путь возвращает сам документ без обертки, а отсутствие
// документа — пустой успешный ответ (null), в отличие от update/delete,
// которые отвечают 404. Асимметрия сохранена намеренно.
package read

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

// Handler обрабатывает запросы на получение объявления по идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения объявления.
type Service interface {
	Read(ctx context.Context, id string) (models.Document, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить объявление
// @Description Возвращает объявление по ID либо null, если такого документа нет.
// @Tags Properties
// @Produce json
// @Param id path string true "ID объявления"
// @Success 200 {object} models.Document "Документ объявления или null"
// @Failure 404 {object} response.Response "Некорректный ID"
// @Failure 500 {object} response.Response "Ошибка хранилища"
// @Router /property/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.property.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	res, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidID) {
			log.Error("invalid property id", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("invalid property id"))
			return
		}
		log.Error("failed to read property", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to fetch property"))
		return
	}

	log.Info("read property", slog.String("id", id), slog.Bool("found", res != nil))
	render.JSON(w, r, res)
}
