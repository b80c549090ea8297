package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestURL_SameTarget(t *testing.T) {
	owner := uuid.New()
	url := URL{OriginalURL: "https://example.com", OwnerID: owner}

	tests := []struct {
		name        string
		originalURL string
		ownerID     uuid.UUID
		want        bool
	}{
		{name: "same url and owner", originalURL: "https://example.com", ownerID: owner, want: true},
		{name: "other url", originalURL: "https://example.org", ownerID: owner, want: false},
		{name: "other owner", originalURL: "https://example.com", ownerID: uuid.New(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, url.SameTarget(tt.originalURL, tt.ownerID))
		})
	}
}
