package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

const maxShortCodeAttempts = 5

type URLUseCase struct {
	urlRepo  urlRepository
	userRepo userRepository
	logger   *slog.Logger
}

func NewURLUseCase(urlRepo urlRepository, userRepo userRepository, logger *slog.Logger) *URLUseCase {
	return &URLUseCase{
		urlRepo:  urlRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// ShortenURL returns the record for originalURL owned by user, creating it on first use.
// Submitting the same URL with the same token again returns the existing record.
func (uc *URLUseCase) ShortenURL(ctx context.Context, user *entity.User, originalURL string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ShortenURL"

	if strings.TrimSpace(originalURL) == "" {
		return nil, fmt.Errorf("%s: original url is required: %w", op, entity.ErrValidation)
	}

	for attempt := 0; attempt < maxShortCodeAttempts; attempt++ {
		shortCode := DeriveShortCode(originalURL, user.APIToken, attempt)

		url, err := uc.createOrGet(ctx, originalURL, shortCode, user.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
		}

		if url.SameTarget(originalURL, user.ID) {
			return url, nil
		}

		uc.logger.WarnContext(ctx, "short code collision",
			slog.String("op", op),
			slog.String("short_code", shortCode),
			slog.Int("attempt", attempt),
		)
	}

	return nil, fmt.Errorf("%s: short code: %w", op, entity.ErrMaxRetriesExceeded)
}

// createOrGet retries once when a concurrent insert of the same code wins the race.
func (uc *URLUseCase) createOrGet(ctx context.Context, originalURL, shortCode string, ownerID uuid.UUID) (*entity.URL, error) {
	url, err := uc.urlRepo.CreateOrGet(ctx, originalURL, shortCode, ownerID)
	if errors.Is(err, entity.ErrShortCodeExists) {
		url, err = uc.urlRepo.CreateOrGet(ctx, originalURL, shortCode, ownerID)
	}

	return url, err
}

// ResolveShortCode records a visit and returns the visited record.
// The visit is stored before the caller gets the target back.
func (uc *URLUseCase) ResolveShortCode(ctx context.Context, shortCode string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ResolveShortCode"

	url, err := uc.urlRepo.RecordVisit(ctx, shortCode)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve short code: %w", op, err)
	}

	return url, nil
}

func (uc *URLUseCase) GetURLStats(ctx context.Context, shortCode string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.GetURLStats"

	url, err := uc.urlRepo.RetrieveByShortCode(ctx, shortCode)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get url stats: %w", op, err)
	}

	return url, nil
}

// GetOwner returns the record behind shortCode together with the user who created it.
func (uc *URLUseCase) GetOwner(ctx context.Context, shortCode string) (*entity.URL, *entity.User, error) {
	const op = "usecase.URLUseCase.GetOwner"

	url, err := uc.urlRepo.RetrieveByShortCode(ctx, shortCode)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: failed to get url: %w", op, err)
	}

	owner, err := uc.userRepo.RetrieveByID(ctx, url.OwnerID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: failed to get owner: %w", op, err)
	}

	return url, owner, nil
}
