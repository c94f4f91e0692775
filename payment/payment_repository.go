package payment

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

const selectColumns = `id, user_id, COALESCE(booking_id, ''), payment_method_id, description, amount, refunded_amount, status, date, refund_date`

func (r *Repository) InsertTransaction(ctx context.Context, tx Transaction) (Transaction, error) {
	sql := `
			INSERT INTO booth33.payment_transactions(
			id, user_id, booking_id, payment_method_id, description, amount, status)
			VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
			RETURNING date;
		`

	err := r.conn.QueryRow(ctx, sql,
		tx.ID,
		tx.UserID,
		tx.BookingID,
		tx.PaymentMethodID,
		tx.Description,
		tx.Amount,
		string(tx.Status),
	).Scan(&tx.Date)

	if err != nil {
		return Transaction{}, fmt.Errorf("failed to insert payment transaction: %w", err)
	}

	return tx, nil
}

func (r *Repository) GetTransactionByID(ctx context.Context, id string) (Transaction, error) {
	sql := `SELECT ` + selectColumns + ` FROM booth33.payment_transactions WHERE id = $1;`

	var tx Transaction
	var refundDate *time.Time

	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&tx.ID,
		&tx.UserID,
		&tx.BookingID,
		&tx.PaymentMethodID,
		&tx.Description,
		&tx.Amount,
		&tx.RefundedAmount,
		&tx.Status,
		&tx.Date,
		&refundDate,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Transaction{}, ErrTransactionNotFound
	}

	if err != nil {
		return Transaction{}, fmt.Errorf("failed to fetch payment transaction '%v': %w", id, err)
	}

	tx.RefundDate = refundDate

	return tx, nil
}

func (r *Repository) GetTransactionsPerUser(ctx context.Context, userID string) ([]Transaction, error) {
	sql := `
			SELECT ` + selectColumns + `
			FROM booth33.payment_transactions
			WHERE user_id = $1
			ORDER BY date DESC;
		`

	rows, err := r.conn.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment transactions for user '%v': %w", userID, err)
	}

	defer rows.Close()

	var transactions []Transaction

	for rows.Next() {
		var tx Transaction
		var refundDate *time.Time

		err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.BookingID,
			&tx.PaymentMethodID,
			&tx.Description,
			&tx.Amount,
			&tx.RefundedAmount,
			&tx.Status,
			&tx.Date,
			&refundDate,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning payment transaction row: %w", err)
		}

		tx.RefundDate = refundDate
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment transaction rows: %w", err)
	}

	return transactions, nil
}

func (r *Repository) UpdateRefund(ctx context.Context, id string, refundedAmount float64, status Status, refundDate time.Time) error {
	sql := `
			UPDATE booth33.payment_transactions
			SET refunded_amount = $1, status = $2, refund_date = $3
			WHERE id = $4;
		`

	tag, err := r.conn.Exec(ctx, sql, refundedAmount, string(status), refundDate, id)

	if err != nil {
		return fmt.Errorf("failed to update refund on transaction '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTransactionNotFound
	}

	return nil
}
