package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/vadimbarashkov/shortlink/internal/entity"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const defaultAPITokenLength = 32

type UserOption func(*UserUseCase)

// WithUserCache enables cache-aside resolution of API tokens.
func WithUserCache(cache userCache) UserOption {
	return func(uc *UserUseCase) {
		uc.cache = cache
	}
}

func WithUserLogger(logger *slog.Logger) UserOption {
	return func(uc *UserUseCase) {
		uc.logger = logger
	}
}

type UserUseCase struct {
	apiTokenLength int
	userRepo       userRepository
	cache          userCache
	logger         *slog.Logger
}

func NewUserUseCase(userRepo userRepository, opts ...UserOption) *UserUseCase {
	uc := &UserUseCase{
		apiTokenLength: defaultAPITokenLength,
		userRepo:       userRepo,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Register creates a user with a freshly generated API token.
// A token collision is retried with a new token.
func (uc *UserUseCase) Register(ctx context.Context, name string) (*entity.User, error) {
	const op = "usecase.UserUseCase.Register"
	const maxRetries = 3

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: name is required: %w", op, entity.ErrValidation)
	}

	for i := 0; i < maxRetries; i++ {
		apiToken, err := gonanoid.New(uc.apiTokenLength)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate api token: %w", op, err)
		}

		user, err := uc.userRepo.Save(ctx, uuid.New(), name, apiToken)
		if err != nil {
			if errors.Is(err, entity.ErrAPITokenExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to register user: %w", op, err)
		}

		return user, nil
	}

	return nil, fmt.Errorf("%s: api token: %w", op, entity.ErrMaxRetriesExceeded)
}

// Authenticate resolves an API token to its user. Missing and unknown tokens
// yield entity.ErrUnauthorized.
func (uc *UserUseCase) Authenticate(ctx context.Context, apiToken string) (*entity.User, error) {
	const op = "usecase.UserUseCase.Authenticate"

	if apiToken == "" {
		return nil, fmt.Errorf("%s: api token missing: %w", op, entity.ErrUnauthorized)
	}

	if uc.cache != nil {
		user, err := uc.cache.Get(ctx, apiToken)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, entity.ErrUserNotFound) {
			uc.logger.WarnContext(ctx, "failed to read user cache", slog.String("op", op), slog.Any("err", err))
		}
	}

	user, err := uc.userRepo.RetrieveByAPIToken(ctx, apiToken)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w: %w", op, entity.ErrUnauthorized, err)
		}

		return nil, fmt.Errorf("%s: failed to resolve api token: %w", op, err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, user); err != nil {
			uc.logger.WarnContext(ctx, "failed to write user cache", slog.String("op", op), slog.Any("err", err))
		}
	}

	return user, nil
}

func (uc *UserUseCase) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	const op = "usecase.UserUseCase.GetUser"

	user, err := uc.userRepo.RetrieveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	return user, nil
}
