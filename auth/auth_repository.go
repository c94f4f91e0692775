package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ conn *pgxpool.Pool }

func NewRepository(conn *pgxpool.Pool) *Repository {
	return &Repository{conn: conn}
}

const selectColumns = `id, username, email, password_hash, role, COALESCE(referred_by, ''), created_at`

func (r *Repository) InsertProfile(ctx context.Context, profile Profile) (Profile, error) {
	sql := `
			INSERT INTO booth33.profiles(
			id, username, email, password_hash, role, referred_by)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
			RETURNING created_at;
		`

	err := r.conn.QueryRow(ctx, sql,
		profile.ID,
		profile.Username,
		profile.Email,
		profile.PasswordHash,
		string(profile.Role),
		profile.ReferredBy,
	).Scan(&profile.CreatedAt)

	if err != nil {
		return Profile{}, fmt.Errorf("failed to insert profile: %w", err)
	}

	return profile, nil
}

func (r *Repository) GetProfileByID(ctx context.Context, id string) (Profile, error) {
	sql := `SELECT ` + selectColumns + ` FROM booth33.profiles WHERE id = $1;`

	return r.scanOne(r.conn.QueryRow(ctx, sql, id))
}

func (r *Repository) GetProfileByUsername(ctx context.Context, username string) (Profile, error) {
	sql := `SELECT ` + selectColumns + ` FROM booth33.profiles WHERE username = $1;`

	return r.scanOne(r.conn.QueryRow(ctx, sql, username))
}

func (r *Repository) scanOne(row pgx.Row) (Profile, error) {
	var profile Profile
	err := row.Scan(
		&profile.ID,
		&profile.Username,
		&profile.Email,
		&profile.PasswordHash,
		&profile.Role,
		&profile.ReferredBy,
		&profile.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrProfileNotFound
	}

	if err != nil {
		return Profile{}, fmt.Errorf("failed to fetch profile: %w", err)
	}

	return profile, nil
}
