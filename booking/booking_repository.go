package booking

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

const selectColumns = `id, user_id, session_type, date, "time", duration, price, status, notes, COALESCE(cancellation_reason, ''), created_at, updated_at`

func (r *Repository) InsertBooking(ctx context.Context, booking Booking) (Booking, error) {
	sql := `
			INSERT INTO booth33.bookings(
			id, user_id, session_type, date, "time", duration, price, status, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING created_at, updated_at;
		`

	err := r.conn.QueryRow(ctx, sql,
		booking.ID,
		booking.UserID,
		string(booking.SessionType),
		booking.Date,
		booking.TimeSlot,
		booking.Duration,
		booking.Price,
		string(booking.Status),
		booking.Notes,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, nil
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `SELECT ` + selectColumns + ` FROM booth33.bookings WHERE id = $1;`

	var booking Booking
	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.SessionType,
		&booking.Date,
		&booking.TimeSlot,
		&booking.Duration,
		&booking.Price,
		&booking.Status,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

// GetBookingsForDate matches by calendar date. The statuses filter narrows
// the rows to the ones that can occupy the grid.
func (r *Repository) GetBookingsForDate(ctx context.Context, date time.Time, statuses []string) ([]Booking, error) {
	sql := `SELECT ` + selectColumns + ` FROM booth33.bookings WHERE date = $1::date AND status = ANY($2) ORDER BY "time";`

	return r.queryBookings(ctx, sql, date, statuses)
}

func (r *Repository) GetBookingsPerUser(ctx context.Context, userID string) ([]Booking, error) {
	sql := `SELECT ` + selectColumns + ` FROM booth33.bookings WHERE user_id = $1 ORDER BY date DESC, "time";`

	return r.queryBookings(ctx, sql, userID)
}

func (r *Repository) queryBookings(ctx context.Context, sql string, args ...any) ([]Booking, error) {
	rows, err := r.conn.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		var booking Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.SessionType,
			&booking.Date,
			&booking.TimeSlot,
			&booking.Duration,
			&booking.Price,
			&booking.Status,
			&booking.Notes,
			&booking.CancellationReason,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

// GetAllBookings joins the owner's profile so admin listings can show
// usernames without a second lookup.
func (r *Repository) GetAllBookings(ctx context.Context) ([]Booking, error) {
	sql := `
			SELECT b.id, b.user_id, COALESCE(p.username, ''), b.session_type, b.date, b."time", b.duration, b.price, b.status, b.notes, COALESCE(b.cancellation_reason, ''), b.created_at, b.updated_at
			FROM booth33.bookings b
			LEFT JOIN booth33.profiles p ON p.id = b.user_id
			ORDER BY b.date DESC, b."time";
		`

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		var booking Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.Username,
			&booking.SessionType,
			&booking.Date,
			&booking.TimeSlot,
			&booking.Duration,
			&booking.Price,
			&booking.Status,
			&booking.Notes,
			&booking.CancellationReason,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

func (r *Repository) SetBookingStatus(ctx context.Context, id string, status string, reason string) error {
	sql := `
			UPDATE booth33.bookings
			SET status = $1, cancellation_reason = NULLIF($2, ''), updated_at = now()
			WHERE id = $3;
		`

	tag, err := r.conn.Exec(ctx, sql, status, reason, id)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) UpdateBookingSchedule(ctx context.Context, id string, date time.Time, timeSlot string) error {
	sql := `
			UPDATE booth33.bookings
			SET date = $1, "time" = $2, updated_at = now()
			WHERE id = $3;
		`

	tag, err := r.conn.Exec(ctx, sql, date, timeSlot, id)

	if err != nil {
		return fmt.Errorf("failed to reschedule booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}
