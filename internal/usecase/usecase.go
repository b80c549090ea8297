// Package usecase implements the application logic of the URL shortener:
// user registration and API token resolution, short code derivation,
// shortening, redirect resolution, owner lookup and popularity ranking.
package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

type urlRepository interface {
	CreateOrGet(ctx context.Context, originalURL, shortCode string, ownerID uuid.UUID) (*entity.URL, error)
	RetrieveByShortCode(ctx context.Context, shortCode string) (*entity.URL, error)
	RecordVisit(ctx context.Context, shortCode string) (*entity.URL, error)
	TopByClicks(ctx context.Context, limit int) ([]entity.URL, error)
}

type userRepository interface {
	Save(ctx context.Context, id uuid.UUID, name, apiToken string) (*entity.User, error)
	RetrieveByAPIToken(ctx context.Context, apiToken string) (*entity.User, error)
	RetrieveByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type userCache interface {
	Get(ctx context.Context, apiToken string) (*entity.User, error)
	Set(ctx context.Context, user *entity.User) error
}
