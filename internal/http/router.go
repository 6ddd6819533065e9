package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/valueplus/internal/http/bearer"
	"github.com/MrJamesThe3rd/valueplus/internal/http/property"
	"github.com/MrJamesThe3rd/valueplus/internal/http/recommendation"
	"github.com/MrJamesThe3rd/valueplus/internal/http/session"
)

func New(
	allowedOrigins []string,
	tokens bearer.Parser,
	recommendationsV1 *recommendation.Handler,
	propertiesV1 *property.Handler,
	sessionV1 *session.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(bearer.Authenticate(tokens))

		r.Route("/session", func(r chi.Router) {
			sessionV1.Routes(r)
		})

		r.Route("/recommendations", func(r chi.Router) {
			recommendationsV1.Routes(r)
		})

		r.Route("/properties", propertiesV1.Routes)
	})

	return router
}
