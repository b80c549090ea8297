// Package http provides the HTTP delivery layer of the shortener: routing,
// API token authentication, request decoding and response rendering.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vadimbarashkov/shortlink/pkg/middleware/recoverer"
)

const defaultRequestTimeout = 10 * time.Second

// NewRouter wires every route of the service. A non-positive requestTimeout
// falls back to the default.
func NewRouter(
	logger *httplog.Logger,
	requestTimeout time.Duration,
	urlUseCase urlUseCase,
	userUseCase userUseCase,
	rankingUseCase rankingUseCase,
) *chi.Mux {
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*"},
		AllowedMethods:   []string{"POST", "GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept", apiTokenHeader},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(recoverer.New(logger.Logger))
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.yml")
	})

	validate := newValidator()
	uh := newUserHandler(userUseCase, validate)
	h := newURLHandler(urlUseCase, rankingUseCase, validate)

	r.Get("/{shortCode}", h.redirect)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)

		r.Post("/users", uh.register)

		r.With(requireAPIToken(userUseCase)).Post("/urls", h.shortenURL)
		r.Get("/urls/{shortCode}", h.getURLStats)
		r.Get("/owner/{shortCode}", h.getOwner)
		r.Get("/popular", h.getPopular)
	})

	return r
}
