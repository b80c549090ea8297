package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shortlink/pkg/response"
)

type userHandler struct {
	useCase  userUseCase
	validate *validator.Validate
}

func newUserHandler(useCase userUseCase, validate *validator.Validate) *userHandler {
	return &userHandler{
		useCase:  useCase,
		validate: validate,
	}
}

func (h *userHandler) register(w http.ResponseWriter, r *http.Request) {
	var req userRequest

	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	user, err := h.useCase.Register(r.Context(), req.Name)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderResponse(w, r, response.SuccessResponse(http.StatusCreated, "User registered.", toUserResponse(user)))
}
