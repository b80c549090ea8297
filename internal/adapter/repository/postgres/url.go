package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/shortlink/internal/entity"

	pg "github.com/vadimbarashkov/shortlink/pkg/postgres"
)

const urlColumns = `id, short_code, original_url, owner_id, click_count, visit_timestamps, created_at`

type urlDB struct {
	ID              int64      `db:"id"`
	ShortCode       string     `db:"short_code"`
	OriginalURL     string     `db:"original_url"`
	OwnerID         uuid.UUID  `db:"owner_id"`
	ClickCount      int64      `db:"click_count"`
	VisitTimestamps timestamps `db:"visit_timestamps"`
	CreatedAt       time.Time  `db:"created_at"`
}

func (u *urlDB) toEntity() *entity.URL {
	return &entity.URL{
		ID:          u.ID,
		ShortCode:   u.ShortCode,
		OriginalURL: u.OriginalURL,
		OwnerID:     u.OwnerID,
		URLStats: entity.URLStats{
			ClickCount:      u.ClickCount,
			VisitTimestamps: []time.Time(u.VisitTimestamps),
		},
		CreatedAt: u.CreatedAt,
	}
}

// URLRepository is the durable short code to URL mapping.
type URLRepository struct {
	db *sqlx.DB
}

func NewURLRepository(db *sqlx.DB) *URLRepository {
	return &URLRepository{db: db}
}

// CreateOrGet returns the record stored under shortCode, creating it when absent.
// An existing record is returned unchanged, whatever its original URL or owner.
// A concurrent insert of the same code makes it fail with entity.ErrShortCodeExists.
func (r *URLRepository) CreateOrGet(ctx context.Context, originalURL, shortCode string, ownerID uuid.UUID) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.CreateOrGet"

	url, err := r.RetrieveByShortCode(ctx, shortCode)
	if err == nil {
		return url, nil
	}
	if !errors.Is(err, entity.ErrURLNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	url, err = r.save(ctx, originalURL, shortCode, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return url, nil
}

// save inserts the record and appends the creation time to the owner's visit history
// in one transaction.
func (r *URLRepository) save(ctx context.Context, originalURL, shortCode string, ownerID uuid.UUID) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.save"
	const insertQuery = `INSERT INTO urls(short_code, original_url, owner_id) VALUES ($1, $2, $3) RETURNING ` + urlColumns
	const historyQuery = `UPDATE users SET visit_history = visit_history || jsonb_build_array(now()) WHERE id = $1`

	var url urlDB

	err := pg.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &url, insertQuery, shortCode, originalURL, ownerID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, historyQuery, ownerID)
		return err
	})
	if err != nil {
		switch {
		case isUniqueViolationError(err):
			return nil, fmt.Errorf("%s: %w", op, entity.ErrShortCodeExists)
		case isForeignKeyViolationError(err):
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
		}

		return nil, storeError(op, "failed to insert into urls table", err)
	}

	return url.toEntity(), nil
}

func (r *URLRepository) RetrieveByShortCode(ctx context.Context, shortCode string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RetrieveByShortCode"
	const query = `SELECT ` + urlColumns + ` FROM urls WHERE short_code = $1`

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, shortCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
		}

		return nil, storeError(op, "failed to get row from urls table", err)
	}

	return url.toEntity(), nil
}

// RecordVisit increments the click count and appends the visit time in a single statement,
// so concurrent visits to the same code are never lost.
func (r *URLRepository) RecordVisit(ctx context.Context, shortCode string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RecordVisit"
	const query = `UPDATE urls
		SET click_count = click_count + 1,
			visit_timestamps = visit_timestamps || jsonb_build_array(now())
		WHERE short_code = $1
		RETURNING ` + urlColumns

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, shortCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
		}

		return nil, storeError(op, "failed to update urls table row", err)
	}

	return url.toEntity(), nil
}

// TopByClicks returns up to limit records, most clicked first. Ties keep insertion order.
func (r *URLRepository) TopByClicks(ctx context.Context, limit int) ([]entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.TopByClicks"
	const query = `SELECT ` + urlColumns + ` FROM urls ORDER BY click_count DESC, id ASC LIMIT $1`

	var rows []urlDB

	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, storeError(op, "failed to select rows from urls table", err)
	}

	urls := make([]entity.URL, 0, len(rows))
	for i := range rows {
		urls = append(urls, *rows[i].toEntity())
	}

	return urls, nil
}
