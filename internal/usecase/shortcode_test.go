package usecase

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveShortCode(t *testing.T) {
	tests := []struct {
		name        string
		originalURL string
		apiToken    string
		attempt     int
		want        string
	}{
		{
			name:        "first attempt",
			originalURL: "https://example.com/a",
			apiToken:    "T1",
			want:        "8e2e67f4",
		},
		{
			name:        "other token",
			originalURL: "https://example.com/a",
			apiToken:    "T2",
			want:        "9f968255",
		},
		{
			name:        "salted attempt",
			originalURL: "https://example.com/a",
			apiToken:    "T1",
			attempt:     1,
			want:        "6eeae112",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveShortCode(tt.originalURL, tt.apiToken, tt.attempt)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveShortCode_Properties(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		first := DeriveShortCode("https://example.com", "token", 0)
		second := DeriveShortCode("https://example.com", "token", 0)

		assert.Equal(t, first, second)
	})

	t.Run("fixed length hex", func(t *testing.T) {
		code := DeriveShortCode("https://example.com", "token", 3)

		assert.Len(t, code, ShortCodeLength)
		_, err := hex.DecodeString(code)
		assert.NoError(t, err)
	})

	t.Run("attempts yield distinct codes", func(t *testing.T) {
		seen := make(map[string]struct{})
		for attempt := 0; attempt < maxShortCodeAttempts; attempt++ {
			seen[DeriveShortCode("https://example.com", "token", attempt)] = struct{}{}
		}

		assert.Len(t, seen, maxShortCodeAttempts)
	})
}
