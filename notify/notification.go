package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotificationNotFound = errors.New("notification not found")

type Notification struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"createdAt"`
}

type Repository struct{ conn *pgxpool.Pool }

func NewRepository(conn *pgxpool.Pool) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) InsertNotification(ctx context.Context, n Notification) (Notification, error) {
	sql := `
			INSERT INTO booth33.notifications(id, user_id, type, title, message, data)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at;
		`

	err := r.conn.QueryRow(ctx, sql,
		n.ID,
		n.UserID,
		n.Type,
		n.Title,
		n.Message,
		n.Data,
	).Scan(&n.CreatedAt)

	if err != nil {
		return Notification{}, fmt.Errorf("failed to insert notification: %w", err)
	}

	return n, nil
}

func (r *Repository) GetNotificationsPerUser(ctx context.Context, userID string) ([]Notification, error) {
	sql := `
			SELECT id, user_id, type, title, message, COALESCE(data, '{}'::jsonb), read, created_at
			FROM booth33.notifications
			WHERE user_id = $1
			ORDER BY created_at DESC;
		`

	rows, err := r.conn.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications for user '%v': %w", userID, err)
	}

	defer rows.Close()

	var notifications []Notification

	for rows.Next() {
		var n Notification
		err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.Data,
			&n.Read,
			&n.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}

func (r *Repository) SetNotificationRead(ctx context.Context, userID, id string) error {
	sql := `
			UPDATE booth33.notifications
			SET read = true
			WHERE id = $1 AND user_id = $2;
		`

	tag, err := r.conn.Exec(ctx, sql, id, userID)

	if err != nil {
		return fmt.Errorf("failed to mark notification '%v' read: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

func (r *Repository) SetAllNotificationsRead(ctx context.Context, userID string) error {
	sql := `
			UPDATE booth33.notifications
			SET read = true
			WHERE user_id = $1 AND read = false;
		`

	_, err := r.conn.Exec(ctx, sql, userID)

	if err != nil {
		return fmt.Errorf("failed to mark notifications read for user '%v': %w", userID, err)
	}

	return nil
}
