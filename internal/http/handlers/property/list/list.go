// Package list реализует HTTP-обработчик для получения всех объявлений каталога.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/rental-housing/internal/http/response"
	"github.com/magabrotheeeer/rental-housing/internal/lib/sl"
	"github.com/magabrotheeeer/rental-housing/internal/models"
)

// Handler обрабатывает запросы на получение списка объявлений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка объявлений.
type Service interface {
	List(ctx context.Context) ([]models.Document, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список объявлений
// @Description Возвращает все объявления каталога.
// @Tags Properties
// @Produce json
// @Success 200 {object} response.Response "Список объявлений"
// @Failure 500 {object} response.Response "Ошибка хранилища"
// @Router /properties [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.property.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to fetch properties", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to fetch properties"))
		return
	}

	log.Info("listed properties", slog.Int("count", len(res)))
	render.JSON(w, r, response.OKWithData(res))
}
