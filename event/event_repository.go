package event

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

const selectColumns = `id, name, type, description, date, "time", duration, max_attendees, price, auto_post_to_feed, rsvps, created_at`

func (r *Repository) InsertEvent(ctx context.Context, e Event) (Event, error) {
	sql := `
			INSERT INTO booth33.events(
			id, name, type, description, date, "time", duration, max_attendees, price, auto_post_to_feed, rsvps)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING created_at;
		`

	err := r.conn.QueryRow(ctx, sql,
		e.ID,
		e.Name,
		string(e.Type),
		e.Description,
		e.Date,
		e.TimeSlot,
		e.Duration,
		e.MaxAttendees,
		e.Price,
		e.AutoPostToFeed,
		e.RSVPs,
	).Scan(&e.CreatedAt)

	if err != nil {
		return Event{}, fmt.Errorf("failed to insert event: %w", err)
	}

	return e, nil
}

func (r *Repository) GetEventByID(ctx context.Context, id string) (Event, error) {
	sql := `SELECT ` + selectColumns + ` FROM booth33.events WHERE id = $1;`

	var e Event
	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&e.ID,
		&e.Name,
		&e.Type,
		&e.Description,
		&e.Date,
		&e.TimeSlot,
		&e.Duration,
		&e.MaxAttendees,
		&e.Price,
		&e.AutoPostToFeed,
		&e.RSVPs,
		&e.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Event{}, ErrEventNotFound
	}

	if err != nil {
		return Event{}, fmt.Errorf("failed to fetch event with id %v: %w", id, err)
	}

	return e, nil
}

func (r *Repository) GetEvents(ctx context.Context) ([]Event, error) {
	sql := `SELECT ` + selectColumns + ` FROM booth33.events ORDER BY date, "time";`

	return r.queryEvents(ctx, sql)
}

// GetEventsForDate matches by calendar date, never by time of day.
func (r *Repository) GetEventsForDate(ctx context.Context, date time.Time) ([]Event, error) {
	sql := `SELECT ` + selectColumns + ` FROM booth33.events WHERE date = $1::date ORDER BY "time";`

	return r.queryEvents(ctx, sql, date)
}

func (r *Repository) queryEvents(ctx context.Context, sql string, args ...any) ([]Event, error) {
	rows, err := r.conn.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	defer rows.Close()

	var events []Event

	for rows.Next() {
		var e Event
		err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Type,
			&e.Description,
			&e.Date,
			&e.TimeSlot,
			&e.Duration,
			&e.MaxAttendees,
			&e.Price,
			&e.AutoPostToFeed,
			&e.RSVPs,
			&e.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}

		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

func (r *Repository) AddRSVP(ctx context.Context, id, userID string) error {
	sql := `
			UPDATE booth33.events
			SET rsvps = array_append(rsvps, $1)
			WHERE id = $2 AND NOT ($1 = ANY(rsvps));
		`

	_, err := r.conn.Exec(ctx, sql, userID, id)

	if err != nil {
		return fmt.Errorf("failed to add rsvp to event '%v': %w", id, err)
	}

	return nil
}

func (r *Repository) RemoveRSVP(ctx context.Context, id, userID string) error {
	sql := `
			UPDATE booth33.events
			SET rsvps = array_remove(rsvps, $1)
			WHERE id = $2;
		`

	_, err := r.conn.Exec(ctx, sql, userID, id)

	if err != nil {
		return fmt.Errorf("failed to remove rsvp from event '%v': %w", id, err)
	}

	return nil
}

// DeleteEvent removes the event outright. Unlike bookings, events have no
// soft cancellation status.
func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	sql := `DELETE FROM booth33.events WHERE id = $1;`

	tag, err := r.conn.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to delete event '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	return nil
}
