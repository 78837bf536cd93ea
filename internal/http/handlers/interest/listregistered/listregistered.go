// Package listregistered реализует HTTP-обработчик выдачи всех заявок на аренду.
package listregistered

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

// Handler обрабатывает запросы на получение списка заявок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка заявок.
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
// @Summary Список заявок на аренду
// @Description Возвращает все зарегистрированные заявки.
// @Tags Interest
// @Produce json
// @Success 200 {object} response.ListResponse "Список заявок"
// @Failure 500 {object} response.ListResponse "Ошибка сервера"
// @Router /get-registered-users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.interest.listregistered"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to fetch registered users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ListResponse{
			Success: false,
			Message: "Internal Server Error",
			Error:   "failed to fetch registered users",
		})
		return
	}

	log.Info("listed registered users", slog.Int("count", len(res)))
	render.JSON(w, r, response.ListResponse{
		Success: true,
		Message: "Successfully fetched registered users",
		Data:    res,
	})
}
