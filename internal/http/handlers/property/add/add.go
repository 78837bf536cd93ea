// Package add реализует HTTP-обработчик для добавления объявления в каталог.
//
// Тело запроса — произвольный JSON-объект с полями объявления; сервер его
// не валидирует и вставляет как есть. В ответ возвращается подтверждение
// вставки с идентификатором, сгенерированным хранилищем.
package add

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/rental-housing/internal/http/response"
	"github.com/magabrotheeeer/rental-housing/internal/lib/sl"
	"github.com/magabrotheeeer/rental-housing/internal/models"
)

// Handler обрабатывает запросы на добавление объявления.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики добавления объявления.
type Service interface {
	Add(ctx context.Context, doc models.Document) (string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Добавить объявление
// @Description Вставляет объявление как есть и возвращает подтверждение вставки.
// @Tags Properties
// @Accept json
// @Produce json
// @Param request body models.Document true "Поля объявления"
// @Success 200 {object} map[string]any "Подтверждение вставки"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 500 {object} response.Response "Ошибка хранилища"
// @Router /add-property [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.property.add"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded")

	id, err := h.service.Add(r.Context(), doc)
	if err != nil {
		log.Error("failed to add property", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to add property"))
		return
	}

	log.Info("property added", slog.String("id", id))
	render.JSON(w, r, map[string]any{
		"acknowledged": true,
		"insertedId":   id,
	})
}
