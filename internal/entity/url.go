package entity

import (
	"time"

	"github.com/google/uuid"
)

// URL represents a shortened URL.
type URL struct {
	ID          int64     // ID is the unique identifier of the URL in the database.
	ShortCode   string    // ShortCode is the code derived from the original URL and the owner's API token.
	OriginalURL string    // OriginalURL is the full URL that the short code resolves to.
	OwnerID     uuid.UUID // OwnerID is the ID of the user who shortened the URL.
	URLStats              // URLStats contains statistics about the URL.
	CreatedAt   time.Time // CreatedAt is the timestamp when the URL was created.
}

// URLStats contains statistics related to a shortened URL.
// ClickCount always equals len(VisitTimestamps).
type URLStats struct {
	ClickCount      int64       // ClickCount is the number of times the shortened URL has been visited.
	VisitTimestamps []time.Time // VisitTimestamps holds one entry per visit, oldest first.
}

// SameTarget reports whether u was created for originalURL by the owner with ownerID.
func (u *URL) SameTarget(originalURL string, ownerID uuid.UUID) bool {
	return u.OriginalURL == originalURL && u.OwnerID == ownerID
}
