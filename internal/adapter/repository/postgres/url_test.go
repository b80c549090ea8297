package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

var urlColumnNames = []string{"id", "short_code", "original_url", "owner_id", "click_count", "visit_timestamps", "created_at"}

func setupURLRepository(t testing.TB) (*URLRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := setupDB(t)

	return NewURLRepository(db), mock
}

func TestURLRepository_CreateOrGet(t *testing.T) {
	ownerID := uuid.New()

	t.Run("existing record", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		rows := sqlmock.NewRows(urlColumnNames).
			AddRow(1, "1a2b3c4d", "https://example.com", ownerID.String(), 3, []byte(`[]`), time.Time{})

		mock.ExpectQuery(`SELECT (.+) FROM urls WHERE short_code`).
			WithArgs("1a2b3c4d").
			WillReturnRows(rows)

		url, err := repo.CreateOrGet(context.TODO(), "https://example.com", "1a2b3c4d", ownerID)

		assert.NoError(t, err)
		require.NotNil(t, url)
		assert.Equal(t, int64(1), url.ID)
		assert.Equal(t, int64(3), url.ClickCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lookup error", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM urls WHERE short_code`).
			WithArgs("1a2b3c4d").
			WillReturnError(errUnknown)

		url, err := repo.CreateOrGet(context.TODO(), "https://example.com", "1a2b3c4d", ownerID)

		assert.ErrorIs(t, err, errUnknown)
		assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
		assert.Nil(t, url)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("short code exists", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM urls WHERE short_code`).
			WithArgs("1a2b3c4d").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("1a2b3c4d", "https://example.com", ownerID).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationErrCode})
		mock.ExpectRollback()

		url, err := repo.CreateOrGet(context.TODO(), "https://example.com", "1a2b3c4d", ownerID)

		assert.ErrorIs(t, err, entity.ErrShortCodeExists)
		assert.NotErrorIs(t, err, entity.ErrStoreUnavailable)
		assert.Nil(t, url)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("owner not found", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM urls WHERE short_code`).
			WithArgs("1a2b3c4d").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("1a2b3c4d", "https://example.com", ownerID).
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationErrCode})
		mock.ExpectRollback()

		url, err := repo.CreateOrGet(context.TODO(), "https://example.com", "1a2b3c4d", ownerID)

		assert.ErrorIs(t, err, entity.ErrUserNotFound)
		assert.Nil(t, url)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("visit history error rolls back", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		rows := sqlmock.NewRows(urlColumnNames).
			AddRow(1, "1a2b3c4d", "https://example.com", ownerID.String(), 0, []byte(`[]`), time.Time{})

		mock.ExpectQuery(`SELECT (.+) FROM urls WHERE short_code`).
			WithArgs("1a2b3c4d").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("1a2b3c4d", "https://example.com", ownerID).
			WillReturnRows(rows)
		mock.ExpectExec(`UPDATE users SET visit_history`).
			WithArgs(ownerID).
			WillReturnError(errUnknown)
		mock.ExpectRollback()

		url, err := repo.CreateOrGet(context.TODO(), "https://example.com", "1a2b3c4d", ownerID)

		assert.ErrorIs(t, err, errUnknown)
		assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
		assert.Nil(t, url)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("created", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		rows := sqlmock.NewRows(urlColumnNames).
			AddRow(1, "1a2b3c4d", "https://example.com", ownerID.String(), 0, []byte(`[]`), time.Time{})

		mock.ExpectQuery(`SELECT (.+) FROM urls WHERE short_code`).
			WithArgs("1a2b3c4d").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("1a2b3c4d", "https://example.com", ownerID).
			WillReturnRows(rows)
		mock.ExpectExec(`UPDATE users SET visit_history`).
			WithArgs(ownerID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		wantURL := entity.URL{
			ID:          1,
			ShortCode:   "1a2b3c4d",
			OriginalURL: "https://example.com",
			OwnerID:     ownerID,
			URLStats: entity.URLStats{
				VisitTimestamps: []time.Time{},
			},
		}

		url, err := repo.CreateOrGet(context.TODO(), "https://example.com", "1a2b3c4d", ownerID)

		assert.NoError(t, err)
		require.NotNil(t, url)
		assert.Equal(t, wantURL, *url)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestURLRepository_RetrieveByShortCode(t *testing.T) {
	ownerID := uuid.New()

	t.Run("url not found", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM urls`).
			WithArgs("deadbeef").
			WillReturnError(sql.ErrNoRows)

		url, err := repo.RetrieveByShortCode(context.TODO(), "deadbeef")

		assert.ErrorIs(t, err, entity.ErrURLNotFound)
		assert.Nil(t, url)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown error", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM urls`).
			WithArgs("1a2b3c4d").
			WillReturnError(errUnknown)

		url, err := repo.RetrieveByShortCode(context.TODO(), "1a2b3c4d")

		assert.ErrorIs(t, err, errUnknown)
		assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
		assert.Nil(t, url)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		rows := sqlmock.NewRows(urlColumnNames).
			AddRow(1, "1a2b3c4d", "https://example.com", ownerID.String(), 1, []byte(`["2024-01-02T03:04:05Z"]`), time.Time{})

		mock.ExpectQuery(`SELECT (.+) FROM urls`).
			WithArgs("1a2b3c4d").
			WillReturnRows(rows)

		url, err := repo.RetrieveByShortCode(context.TODO(), "1a2b3c4d")

		assert.NoError(t, err)
		require.NotNil(t, url)
		assert.Equal(t, "https://example.com", url.OriginalURL)
		assert.Equal(t, ownerID, url.OwnerID)
		assert.Equal(t, int64(1), url.ClickCount)
		assert.Len(t, url.VisitTimestamps, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestURLRepository_RecordVisit(t *testing.T) {
	ownerID := uuid.New()

	t.Run("url not found", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		mock.ExpectQuery(`UPDATE urls`).
			WithArgs("deadbeef").
			WillReturnError(sql.ErrNoRows)

		url, err := repo.RecordVisit(context.TODO(), "deadbeef")

		assert.ErrorIs(t, err, entity.ErrURLNotFound)
		assert.NotErrorIs(t, err, entity.ErrStoreUnavailable)
		assert.Nil(t, url)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("timeout", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		mock.ExpectQuery(`UPDATE urls`).
			WithArgs("1a2b3c4d").
			WillReturnError(context.DeadlineExceeded)

		url, err := repo.RecordVisit(context.TODO(), "1a2b3c4d")

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
		assert.Nil(t, url)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		rows := sqlmock.NewRows(urlColumnNames).
			AddRow(1, "1a2b3c4d", "https://example.com", ownerID.String(), 1, []byte(`["2024-01-02T03:04:05Z"]`), time.Time{})

		mock.ExpectQuery(`UPDATE urls\s+SET click_count = click_count \+ 1`).
			WithArgs("1a2b3c4d").
			WillReturnRows(rows)

		url, err := repo.RecordVisit(context.TODO(), "1a2b3c4d")

		assert.NoError(t, err)
		require.NotNil(t, url)
		assert.Equal(t, int64(1), url.ClickCount)
		assert.Len(t, url.VisitTimestamps, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestURLRepository_TopByClicks(t *testing.T) {
	ownerID := uuid.New()

	t.Run("unknown error", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM urls ORDER BY click_count DESC, id ASC`).
			WithArgs(3).
			WillReturnError(errUnknown)

		urls, err := repo.TopByClicks(context.TODO(), 3)

		assert.ErrorIs(t, err, errUnknown)
		assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
		assert.Nil(t, urls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		mock.ExpectQuery(`SELECT (.+) FROM urls ORDER BY`).
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows(urlColumnNames))

		urls, err := repo.TopByClicks(context.TODO(), 10)

		assert.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		repo, mock := setupURLRepository(t)

		rows := sqlmock.NewRows(urlColumnNames).
			AddRow(1, "aaaaaaaa", "https://example.com/a", ownerID.String(), 5, []byte(`[]`), time.Time{}).
			AddRow(3, "cccccccc", "https://example.com/c", ownerID.String(), 5, []byte(`[]`), time.Time{}).
			AddRow(2, "bbbbbbbb", "https://example.com/b", ownerID.String(), 3, []byte(`[]`), time.Time{})

		mock.ExpectQuery(`SELECT (.+) FROM urls ORDER BY`).
			WithArgs(3).
			WillReturnRows(rows)

		urls, err := repo.TopByClicks(context.TODO(), 3)

		assert.NoError(t, err)
		require.Len(t, urls, 3)
		assert.Equal(t, "aaaaaaaa", urls[0].ShortCode)
		assert.Equal(t, "cccccccc", urls[1].ShortCode)
		assert.Equal(t, "bbbbbbbb", urls[2].ShortCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
