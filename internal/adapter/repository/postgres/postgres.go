// Package postgres implements the URL catalog and the user store on top of PostgreSQL.
package postgres

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

const (
	uniqueViolationErrCode     = "23505"
	foreignKeyViolationErrCode = "23503"
)

func isUniqueViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.SQLState() == uniqueViolationErrCode
}

func isForeignKeyViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.SQLState() == foreignKeyViolationErrCode
}

// storeError marks err as a store failure while keeping the driver error in the chain.
func storeError(op, msg string, err error) error {
	return fmt.Errorf("%s: %s: %w: %w", op, msg, entity.ErrStoreUnavailable, err)
}

// timestamps is a JSONB array of timestamps, e.g. ["2024-01-02T03:04:05.123456+00:00"].
type timestamps []time.Time

func (ts *timestamps) Scan(src any) error {
	var data []byte

	switch v := src.(type) {
	case nil:
		*ts = timestamps{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("timestamps: unsupported source type %T", src)
	}

	var parsed []time.Time
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("timestamps: %w", err)
	}
	if parsed == nil {
		parsed = []time.Time{}
	}

	*ts = parsed
	return nil
}
