// Package signup реализует HTTP-обработчик регистрации учетной записи.
//
// Пароль обязателен; занятый email отклоняется. В ответ попадают только
// открытые поля учетной записи, хэш пароля не возвращается никогда.
package signup

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/rental-housing/internal/http/response"
	"github.com/magabrotheeeer/rental-housing/internal/lib/sl"
	"github.com/magabrotheeeer/rental-housing/internal/services/account"
)

// Request входные данные для регистрации. Имя исторически необязательно.
type Request struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Handler обрабатывает HTTP-запросы регистрации.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Signup(ctx context.Context, name, email, password string) (*account.PublicUser, error)
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
// @Summary Регистрация пользователя
// @Description Создает учетную запись с ролью "default". Пароль хранится только в виде bcrypt-хэша.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body Request true "Данные регистрации"
// @Success 200 {object} map[string]any "Открытые поля учетной записи"
// @Failure 400 {object} response.Response "Некорректный JSON, отсутствует пароль или email занят"
// @Failure 500 {object} response.Response "Ошибка сервера"
// @Router /signup [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account.signup"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	user, err := h.service.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrEmailTaken) {
			log.Error("email already taken", slog.String("email", req.Email))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("User with this email already exists"))
			return
		}
		log.Error("signup failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Signup failed"))
		return
	}

	log.Info("user signed up", slog.String("email", user.Email))
	render.JSON(w, r, map[string]any{
		"status":      true,
		"accountRole": user.AccountRole,
		"name":        user.Name,
		"email":       user.Email,
	})
}
