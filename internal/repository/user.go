package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/go-blog/internal/errs"
	"github.com/deppfellow/go-blog/internal/model"
)

const userColumns = `id, first_name, last_name, email, password, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u model.NewUser) (*model.User, error) {
	stmt := `
		INSERT INTO users (first_name, last_name, email, password)
		VALUES (@first_name, @last_name, @email, @password)
		RETURNING ` + userColumns

	rows, err := r.pool.Query(ctx, stmt, pgx.NamedArgs{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"password":   u.PasswordHash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create user query for email=%s: %w", u.Email, err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect user row for email=%s: %w", u.Email, err)
	}

	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	stmt := `SELECT ` + userColumns + ` FROM users WHERE id = @id`

	rows, err := r.pool.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get user query for id=%d: %w", id, err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewUserNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to collect user row for id=%d: %w", id, err)
	}

	return user, nil
}

// List returns one page of users ordered by id. A page past the end is empty.
func (r *UserRepository) List(ctx context.Context, p model.Pagination) ([]model.User, error) {
	stmt := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY id
		LIMIT @limit OFFSET @offset`

	rows, err := r.pool.Query(ctx, stmt, pgx.NamedArgs{
		"limit":  p.Limit,
		"offset": p.Offset(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute list users query limit=%d page=%d: %w", p.Limit, p.Page, err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect user rows: %w", err)
	}

	return users, nil
}

// Patch applies the non-nil fields of patch and returns the updated row.
func (r *UserRepository) Patch(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error) {
	stmt := `
		UPDATE users SET
			first_name = COALESCE(@first_name, first_name),
			last_name  = COALESCE(@last_name, last_name),
			email      = COALESCE(@email, email),
			password   = COALESCE(@password, password),
			updated_at = NOW()
		WHERE id = @id
		RETURNING ` + userColumns

	rows, err := r.pool.Query(ctx, stmt, pgx.NamedArgs{
		"id":         id,
		"first_name": patch.FirstName,
		"last_name":  patch.LastName,
		"email":      patch.Email,
		"password":   patch.PasswordHash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute patch user query for id=%d: %w", id, err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewUserNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to collect user row for id=%d: %w", id, err)
	}

	return user, nil
}
