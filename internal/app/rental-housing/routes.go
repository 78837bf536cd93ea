// Package rentalhousing предоставляет маршруты для основного приложения.
package rentalhousing

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/rental-housing/internal/http/handlers/account/getprofile"
	"github.com/magabrotheeeer/rental-housing/internal/http/handlers/account/login"
	"github.com/magabrotheeeer/rental-housing/internal/http/handlers/account/signup"
	"github.com/magabrotheeeer/rental-housing/internal/http/handlers/account/updateprofile"
	interestlist "github.com/magabrotheeeer/rental-housing/internal/http/handlers/interest/listregistered"
	interestregister "github.com/magabrotheeeer/rental-housing/internal/http/handlers/interest/register"
	propertyadd "github.com/magabrotheeeer/rental-housing/internal/http/handlers/property/add"
	propertylist "github.com/magabrotheeeer/rental-housing/internal/http/handlers/property/list"
	propertyread "github.com/magabrotheeeer/rental-housing/internal/http/handlers/property/read"
	propertyremove "github.com/magabrotheeeer/rental-housing/internal/http/handlers/property/remove"
	propertyupdate "github.com/magabrotheeeer/rental-housing/internal/http/handlers/property/update"
	"github.com/magabrotheeeer/rental-housing/internal/http/middlewarectx"
	accountservice "github.com/magabrotheeeer/rental-housing/internal/services/account"
	interestservice "github.com/magabrotheeeer/rental-housing/internal/services/interest"
	propertyservice "github.com/magabrotheeeer/rental-housing/internal/services/property"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	propertyService *propertyservice.Service,
	accountService *accountservice.Service,
	interestService *interestservice.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middlewarectx.RateLimitMiddleware(logger))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "Welcome to Rental Housing Server!")
	})

	r.Route("/api", func(r chi.Router) {
		// Каталог объявлений
		r.Get("/properties", propertylist.New(logger, propertyService).ServeHTTP)
		r.Post("/add-property", propertyadd.New(logger, propertyService).ServeHTTP)
		r.Get("/property/{id}", propertyread.New(logger, propertyService).ServeHTTP)
		r.Put("/update-property/{id}", propertyupdate.New(logger, propertyService).ServeHTTP)
		r.Delete("/delete-property/{id}", propertyremove.New(logger, propertyService).ServeHTTP)

		// Реестр заявок на аренду
		r.Post("/register-user", interestregister.New(logger, interestService).ServeHTTP)
		r.Get("/get-registered-users", interestlist.New(logger, interestService).ServeHTTP)

		// Учетные записи
		r.Post("/signup", signup.New(logger, accountService).ServeHTTP)
		r.Post("/login", login.New(logger, accountService).ServeHTTP)
		r.Get("/get-profile", getprofile.New(logger, accountService).ServeHTTP)

		// Профиль адресуется либо ID в пути, либо email в теле
		profileUpdate := updateprofile.New(logger, accountService)
		r.Put("/update-profile/{id}", profileUpdate.ServeHTTP)
		r.Put("/update-profile", profileUpdate.ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
