package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

type userRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// userResponse is returned once, at registration. It is the only response
// carrying the API token.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	APIToken  string    `json:"api_token"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Name:      user.Name,
		APIToken:  user.APIToken,
		CreatedAt: user.CreatedAt,
	}
}

type urlRequest struct {
	OriginalURL string `json:"original_url" validate:"required,url"`
}

type urlResponse struct {
	ID          int64     `json:"id"`
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	ClickCount  int64     `json:"click_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func toURLResponse(url *entity.URL) urlResponse {
	return urlResponse{
		ID:          url.ID,
		ShortCode:   url.ShortCode,
		OriginalURL: url.OriginalURL,
		ClickCount:  url.ClickCount,
		CreatedAt:   url.CreatedAt,
	}
}

type urlStatsResponse struct {
	ID          int64     `json:"id"`
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	Stats       urlStats  `json:"stats"`
	CreatedAt   time.Time `json:"created_at"`
}

type urlStats struct {
	ClickCount      int64       `json:"click_count"`
	VisitTimestamps []time.Time `json:"visit_timestamps"`
}

func toURLStatsResponse(url *entity.URL) urlStatsResponse {
	visits := url.VisitTimestamps
	if visits == nil {
		visits = []time.Time{}
	}

	return urlStatsResponse{
		ID:          url.ID,
		ShortCode:   url.ShortCode,
		OriginalURL: url.OriginalURL,
		Stats: urlStats{
			ClickCount:      url.ClickCount,
			VisitTimestamps: visits,
		},
		CreatedAt: url.CreatedAt,
	}
}

type ownerResponse struct {
	ShortCode string `json:"short_code"`
	Owner     owner  `json:"owner"`
}

type owner struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toOwnerResponse(url *entity.URL, user *entity.User) ownerResponse {
	return ownerResponse{
		ShortCode: url.ShortCode,
		Owner: owner{
			ID:   user.ID,
			Name: user.Name,
		},
	}
}
