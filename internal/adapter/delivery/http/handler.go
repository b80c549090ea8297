package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shortlink/internal/entity"
	"github.com/vadimbarashkov/shortlink/pkg/response"
)

type urlUseCase interface {
	ShortenURL(ctx context.Context, user *entity.User, originalURL string) (*entity.URL, error)
	ResolveShortCode(ctx context.Context, shortCode string) (*entity.URL, error)
	GetURLStats(ctx context.Context, shortCode string) (*entity.URL, error)
	GetOwner(ctx context.Context, shortCode string) (*entity.URL, *entity.User, error)
}

type userUseCase interface {
	Register(ctx context.Context, name string) (*entity.User, error)
	Authenticate(ctx context.Context, apiToken string) (*entity.User, error)
}

type rankingUseCase interface {
	TopURLs(ctx context.Context, limit int) ([]entity.URL, error)
}

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

func newValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

// decodeAndValidate reads a JSON body into v. On failure the error response
// is already written and false is returned.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, validate *validator.Validate, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		if errors.Is(err, io.EOF) {
			renderResponse(w, r, response.EmptyRequestBodyResponse)
			return false
		}

		renderResponse(w, r, response.InvalidRequestBodyResponse)
		return false
	}

	if err := validate.Struct(v); err != nil {
		renderResponse(w, r, response.ValidationErrorResponse(err))
		return false
	}

	return true
}

func renderResponse(w http.ResponseWriter, r *http.Request, resp response.Response) {
	render.Status(r, resp.StatusCode)
	render.JSON(w, r, resp)
}

// renderError maps domain errors to status codes. Anything unknown is logged and
// reported as a server error.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		renderResponse(w, r, response.BadRequestResponse("Request data is invalid."))
	case errors.Is(err, entity.ErrUnauthorized):
		renderResponse(w, r, response.UnauthorizedResponse)
	case errors.Is(err, entity.ErrURLNotFound), errors.Is(err, entity.ErrUserNotFound):
		renderResponse(w, r, response.ResourceNotFoundResponse)
	default:
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))
		renderResponse(w, r, response.ServerErrorResponse)
	}
}
