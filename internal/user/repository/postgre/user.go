package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"desapega-api/internal/model"
	repo "desapega-api/internal/user/repository"
)

// uniqueViolation is the postgres error code for unique index violations.
const uniqueViolation = "23505"

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, profile, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, email, password_hash, profile, created_at, updated_at`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Email, opt.PasswordHash, opt.Profile).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Profile, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, name, email, password_hash, profile, created_at, updated_at FROM users WHERE %s LIMIT 1`,
		mods,
	)

	var u model.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Profile, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// UpdateUserPassword overwrites the stored password hash.
func (r *implRepository) UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUserPassword"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
