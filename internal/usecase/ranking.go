package usecase

import (
	"context"
	"fmt"

	"github.com/vadimbarashkov/shortlink/internal/entity"
)

const (
	DefaultPopularLimit = 10
	MaxPopularLimit     = 100
)

type urlRanker interface {
	TopByClicks(ctx context.Context, limit int) ([]entity.URL, error)
}

// RankingUseCase owns the popularity policy: the default and maximum limit.
// Ties are ordered by creation, which the repository guarantees.
type RankingUseCase struct {
	defaultLimit int
	urlRepo      urlRanker
}

func NewRankingUseCase(defaultLimit int, urlRepo urlRanker) *RankingUseCase {
	if defaultLimit <= 0 || defaultLimit > MaxPopularLimit {
		defaultLimit = DefaultPopularLimit
	}

	return &RankingUseCase{
		defaultLimit: defaultLimit,
		urlRepo:      urlRepo,
	}
}

// TopURLs returns the most visited URLs. A non-positive limit selects the default.
func (uc *RankingUseCase) TopURLs(ctx context.Context, limit int) ([]entity.URL, error) {
	const op = "usecase.RankingUseCase.TopURLs"

	switch {
	case limit <= 0:
		limit = uc.defaultLimit
	case limit > MaxPopularLimit:
		limit = MaxPopularLimit
	}

	urls, err := uc.urlRepo.TopByClicks(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get popular urls: %w", op, err)
	}

	return urls, nil
}
