package users

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements UsersRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new user.
func (r *PGRepo) Create(ctx context.Context, u User) error {
	const query = `
INSERT INTO users (id, email, name, role, client_id, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var clientID sql.NullString
	if u.ClientID != "" {
		clientID = sql.NullString{String: u.ClientID, Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, query,
		u.ID, u.Email, u.Name, u.Role, clientID, u.Active, u.CreatedAt, u.UpdatedAt)
	return err
}

// GetByID fetches a user by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (User, error) {
	const query = `
SELECT id, email, name, role, client_id, active, created_at, updated_at
FROM users
WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

// GetByEmail fetches a user by email, case-insensitively.
func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT id, email, name, role, client_id, active, created_at, updated_at
FROM users
WHERE lower(email) = lower($1)`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

// Update rewrites the mutable fields of a user.
func (r *PGRepo) Update(ctx context.Context, u User) error {
	const query = `
UPDATE users
SET name = $1, role = $2, client_id = $3, active = $4, updated_at = $5
WHERE id = $6`

	var clientID sql.NullString
	if u.ClientID != "" {
		clientID = sql.NullString{String: u.ClientID, Valid: true}
	}
	res, err := r.DB.ExecContext(ctx, query, u.Name, u.Role, clientID, u.Active, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns users newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]User, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, email, name, role, client_id, active, created_at, updated_at
FROM users
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		var clientID sql.NullString
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &clientID, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		if clientID.Valid {
			u.ClientID = clientID.String
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *PGRepo) scanOne(row *sql.Row) (User, error) {
	var u User
	var clientID sql.NullString
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &clientID, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if clientID.Valid {
		u.ClientID = clientID.String
	}
	return u, nil
}

var _ UsersRepo = (*PGRepo)(nil)
