package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/yoftil7/task-api/internal/models"
)

// CreateUser inserts a new user with the default role. The username UNIQUE
// constraint is the authoritative duplicate guard; there is no pre-check, so
// racing registrations cannot both succeed.
func CreateUser(ctx context.Context, tx *sql.Tx, username, passwordHash string) (*models.User, error) {
	row := tx.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, username, role`,
		username, passwordHash, models.RoleUser)

	user := &models.User{PasswordHash: passwordHash}
	err := row.Scan(&user.ID, &user.Username, &user.Role)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return user, nil
}

// GetUserByUsername returns ErrNotFound when no such user exists.
func GetUserByUsername(ctx context.Context, tx *sql.Tx, username string) (*models.User, error) {
	row := tx.QueryRowContext(ctx, `
		SELECT id, username, password_hash, role
		FROM users
		WHERE username = $1`, username)
	return scanUser(row)
}

func GetUserByID(ctx context.Context, tx *sql.Tx, id int64) (*models.User, error) {
	row := tx.QueryRowContext(ctx, `
		SELECT id, username, password_hash, role
		FROM users
		WHERE id = $1`, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
