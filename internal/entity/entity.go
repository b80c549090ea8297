// Package entity defines the entities and errors used in the application.
// It includes the URL and User structs, which represent a shortened URL and
// the registered user owning it, along with the error definitions shared by
// the use case, repository and delivery layers.
package entity

import "errors"

var (
	// ErrValidation is returned when user supplied input is missing or malformed.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when an API token is missing or not recognized.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrURLNotFound is returned when a URL with the specified short code cannot be found.
	ErrURLNotFound = errors.New("url not found")
	// ErrUserNotFound is returned when a user cannot be found by API token or ID.
	ErrUserNotFound = errors.New("user not found")
	// ErrShortCodeExists is returned when attempting to create a URL with a short code that already exists.
	ErrShortCodeExists = errors.New("short code exists")
	// ErrAPITokenExists is returned when a generated API token is already taken by another user.
	ErrAPITokenExists = errors.New("api token exists")
	// ErrStoreUnavailable is returned when the durable store fails or times out.
	// Callers may retry the whole operation.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrMaxRetriesExceeded is returned when a unique value could not be produced in the allowed attempts.
	ErrMaxRetriesExceeded = errors.New("maximum retries exceeded")
)
