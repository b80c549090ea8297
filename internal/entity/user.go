package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered API client.
type User struct {
	ID        uuid.UUID // ID is the unique identifier of the user.
	Name      string    // Name is the display name given at registration.
	APIToken  string    // APIToken is the opaque credential; it never changes.
	CreatedAt time.Time // CreatedAt is the timestamp when the user registered.

	// VisitHistory records one timestamp per URL created with the user's token.
	VisitHistory []time.Time
}
