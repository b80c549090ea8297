package http

import (
	"context"
	"net/http"

	"github.com/vadimbarashkov/shortlink/internal/entity"
)

const apiTokenHeader = "X-Api-Token"

type userCtxKey struct{}

// requireAPIToken resolves the X-Api-Token header to a user and stores it in
// the request context.
func requireAPIToken(userUseCase userUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := userUseCase.Authenticate(r.Context(), r.Header.Get(apiTokenHeader))
			if err != nil {
				renderError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(*entity.User)
	return user, ok && user != nil
}
