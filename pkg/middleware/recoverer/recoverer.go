// Package recoverer turns handler panics into a JSON server error response.
package recoverer

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/vadimbarashkov/shortlink/pkg/middleware"
	"github.com/vadimbarashkov/shortlink/pkg/response"
)

func New(logger *slog.Logger) middleware.Middleware {
	const op = "middleware.recoverer.New"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}

					logger.ErrorContext(r.Context(),
						"panic occurred while handling request",
						slog.Group(op, slog.Any("err", rvr), slog.String("path", r.URL.Path)),
					)

					render.Status(r, http.StatusInternalServerError)
					render.JSON(w, r, response.ServerErrorResponse)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
