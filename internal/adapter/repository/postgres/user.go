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
)

const userColumns = `id, name, api_token, visit_history, created_at`

type userDB struct {
	ID           uuid.UUID  `db:"id"`
	Name         string     `db:"name"`
	APIToken     string     `db:"api_token"`
	VisitHistory timestamps `db:"visit_history"`
	CreatedAt    time.Time  `db:"created_at"`
}

func (u *userDB) toEntity() *entity.User {
	return &entity.User{
		ID:           u.ID,
		Name:         u.Name,
		APIToken:     u.APIToken,
		VisitHistory: []time.Time(u.VisitHistory),
		CreatedAt:    u.CreatedAt,
	}
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Save stores a new user. A taken API token yields entity.ErrAPITokenExists.
func (r *UserRepository) Save(ctx context.Context, id uuid.UUID, name, apiToken string) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.Save"
	const query = `INSERT INTO users(id, name, api_token) VALUES ($1, $2, $3) RETURNING ` + userColumns

	var user userDB

	if err := r.db.GetContext(ctx, &user, query, id, name, apiToken); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrAPITokenExists)
		}

		return nil, storeError(op, "failed to insert into users table", err)
	}

	return user.toEntity(), nil
}

func (r *UserRepository) RetrieveByAPIToken(ctx context.Context, apiToken string) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.RetrieveByAPIToken"
	const query = `SELECT ` + userColumns + ` FROM users WHERE api_token = $1`

	return r.retrieve(ctx, op, query, apiToken)
}

func (r *UserRepository) RetrieveByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.RetrieveByID"
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return r.retrieve(ctx, op, query, id)
}

func (r *UserRepository) retrieve(ctx context.Context, op, query string, arg any) (*entity.User, error) {
	var user userDB

	if err := r.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
		}

		return nil, storeError(op, "failed to get row from users table", err)
	}

	return user.toEntity(), nil
}
