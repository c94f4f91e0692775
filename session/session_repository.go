package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ conn *pgxpool.Pool }

func NewRepository(conn *pgxpool.Pool) *Repository {
	return &Repository{conn: conn}
}

const selectColumns = `id, booking_id, user_id, status, files, created_at, delivered_at`

func (r *Repository) InsertSession(ctx context.Context, s Session) (Session, error) {
	sql := `
			INSERT INTO booth33.sessions(id, booking_id, user_id, status, files)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at;
		`

	err := r.conn.QueryRow(ctx, sql,
		s.ID,
		s.BookingID,
		s.UserID,
		string(s.Status),
		s.Files,
	).Scan(&s.CreatedAt)

	if err != nil {
		return Session{}, fmt.Errorf("failed to insert session: %w", err)
	}

	return s, nil
}

func (r *Repository) GetSessionByID(ctx context.Context, id string) (Session, error) {
	sql := `SELECT ` + selectColumns + ` FROM booth33.sessions WHERE id = $1;`

	return r.scanOne(r.conn.QueryRow(ctx, sql, id), id)
}

func (r *Repository) GetSessionByBookingID(ctx context.Context, bookingID string) (Session, error) {
	sql := `SELECT ` + selectColumns + ` FROM booth33.sessions WHERE booking_id = $1;`

	return r.scanOne(r.conn.QueryRow(ctx, sql, bookingID), bookingID)
}

func (r *Repository) scanOne(row pgx.Row, id string) (Session, error) {
	var s Session
	var deliveredAt *time.Time

	err := row.Scan(
		&s.ID,
		&s.BookingID,
		&s.UserID,
		&s.Status,
		&s.Files,
		&s.CreatedAt,
		&deliveredAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, ErrSessionNotFound
	}

	if err != nil {
		return Session{}, fmt.Errorf("failed to fetch session '%v': %w", id, err)
	}

	s.DeliveredAt = deliveredAt

	return s, nil
}

func (r *Repository) GetSessionsPerUser(ctx context.Context, userID string) ([]Session, error) {
	sql := `
			SELECT ` + selectColumns + `
			FROM booth33.sessions
			WHERE user_id = $1
			ORDER BY created_at DESC;
		`

	rows, err := r.conn.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions for user '%v': %w", userID, err)
	}

	defer rows.Close()

	var sessions []Session

	for rows.Next() {
		var s Session
		var deliveredAt *time.Time

		err := rows.Scan(
			&s.ID,
			&s.BookingID,
			&s.UserID,
			&s.Status,
			&s.Files,
			&s.CreatedAt,
			&deliveredAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning session row: %w", err)
		}

		s.DeliveredAt = deliveredAt
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	return sessions, nil
}

func (r *Repository) AppendFile(ctx context.Context, id, fileURL string) error {
	sql := `
			UPDATE booth33.sessions
			SET files = array_append(files, $1)
			WHERE id = $2;
		`

	tag, err := r.conn.Exec(ctx, sql, fileURL, id)

	if err != nil {
		return fmt.Errorf("failed to append file to session '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *Repository) SetDelivered(ctx context.Context, id string, deliveredAt time.Time) error {
	sql := `
			UPDATE booth33.sessions
			SET status = 'delivered', delivered_at = $1
			WHERE id = $2;
		`

	tag, err := r.conn.Exec(ctx, sql, deliveredAt, id)

	if err != nil {
		return fmt.Errorf("failed to mark session '%v' delivered: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}
