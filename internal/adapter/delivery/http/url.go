package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shortlink/internal/entity"
	"github.com/vadimbarashkov/shortlink/pkg/response"
)

type urlHandler struct {
	useCase        urlUseCase
	rankingUseCase rankingUseCase
	validate       *validator.Validate
}

func newURLHandler(useCase urlUseCase, rankingUseCase rankingUseCase, validate *validator.Validate) *urlHandler {
	return &urlHandler{
		useCase:        useCase,
		rankingUseCase: rankingUseCase,
		validate:       validate,
	}
}

func (h *urlHandler) shortenURL(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		renderResponse(w, r, response.UnauthorizedResponse)
		return
	}

	var req urlRequest

	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	url, err := h.useCase.ShortenURL(r.Context(), user, req.OriginalURL)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderResponse(w, r, response.SuccessResponse(http.StatusCreated, "URL shortened.", toURLResponse(url)))
}

func (h *urlHandler) redirect(w http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")

	url, err := h.useCase.ResolveShortCode(r.Context(), shortCode)
	if err != nil {
		renderError(w, r, err)
		return
	}

	http.Redirect(w, r, url.OriginalURL, http.StatusFound)
}

func (h *urlHandler) getURLStats(w http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")

	url, err := h.useCase.GetURLStats(r.Context(), shortCode)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderResponse(w, r, response.SuccessResponse(http.StatusOK, "URL stats retrieved.", toURLStatsResponse(url)))
}

func (h *urlHandler) getOwner(w http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")

	url, owner, err := h.useCase.GetOwner(r.Context(), shortCode)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderResponse(w, r, response.SuccessResponse(http.StatusOK, "URL owner retrieved.", toOwnerResponse(url, owner)))
}

func (h *urlHandler) getPopular(w http.ResponseWriter, r *http.Request) {
	var limit int

	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			renderResponse(w, r, response.BadRequestResponse("Query parameter limit must be an integer."))
			return
		}
		limit = n
	}

	urls, err := h.rankingUseCase.TopURLs(r.Context(), limit)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderResponse(w, r, response.SuccessResponse(http.StatusOK, "Popular URLs retrieved.", toURLListResponse(urls)))
}

func toURLListResponse(urls []entity.URL) []urlResponse {
	resp := make([]urlResponse, 0, len(urls))
	for i := range urls {
		resp = append(resp, toURLResponse(&urls[i]))
	}
	return resp
}
