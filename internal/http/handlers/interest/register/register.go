// Package register реализует HTTP-обработчик регистрации заявки на аренду.
//
// Тело запроса — произвольный JSON-объект заявки; сохраняется без
// дедупликации. Формат ответа исторический, со строковым статусом.
package register

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

// Handler обрабатывает запросы на регистрацию заявки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики регистрации заявки.
type Service interface {
	Register(ctx context.Context, doc models.Document) (string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Зарегистрировать заявку на аренду
// @Description Сохраняет заявку как есть, без дедупликации по пользователю и объявлению.
// @Tags Interest
// @Accept json
// @Produce json
// @Param request body models.Document true "Поля заявки"
// @Success 200 {object} response.RegistrationResponse "Заявка зарегистрирована"
// @Failure 400 {object} response.RegistrationResponse "Некорректный JSON"
// @Failure 500 {object} response.RegistrationResponse "Ошибка сервера"
// @Router /register-user [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.interest.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.RegistrationError("invalid request body"))
		return
	}
	log.Info("request body decoded")

	id, err := h.service.Register(r.Context(), doc)
	if err != nil {
		log.Error("failed to register interest", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.RegistrationError("Internal Server Error"))
		return
	}

	log.Info("interest registered", slog.String("id", id))
	render.JSON(w, r, response.RegistrationSuccess("Registered successfully"))
}
