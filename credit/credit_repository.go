package credit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ conn *pgxpool.Pool }

func NewRepository(conn *pgxpool.Pool) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) InsertTransaction(ctx context.Context, tx Transaction) (Transaction, error) {
	sql := `
			INSERT INTO booth33.credit_transactions(
			id, user_id, type, amount, description, granted_by, booking_id)
			VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
			RETURNING created_at;
		`

	err := r.conn.QueryRow(ctx, sql,
		tx.ID,
		tx.UserID,
		string(tx.Type),
		tx.Amount,
		tx.Description,
		tx.GrantedBy,
		tx.BookingID,
	).Scan(&tx.CreatedAt)

	if err != nil {
		return Transaction{}, fmt.Errorf("failed to insert credit transaction: %w", err)
	}

	return tx, nil
}

// GetBalance derives the balance from the transaction log. There is no
// separately stored balance that could drift from the ledger.
func (r *Repository) GetBalance(ctx context.Context, userID string) (float64, error) {
	sql := `
			SELECT COALESCE(SUM(CASE WHEN type = 'granted' THEN amount ELSE -amount END), 0)
			FROM booth33.credit_transactions
			WHERE user_id = $1;
		`

	var balance float64
	err := r.conn.QueryRow(ctx, sql, userID).Scan(&balance)

	if err != nil {
		return 0, fmt.Errorf("failed to fetch credit balance for user '%v': %w", userID, err)
	}

	return balance, nil
}

func (r *Repository) GetTransactionsPerUser(ctx context.Context, userID string) ([]Transaction, error) {
	sql := `
			SELECT id, user_id, type, amount, description, COALESCE(granted_by, ''), COALESCE(booking_id, ''), created_at
			FROM booth33.credit_transactions
			WHERE user_id = $1
			ORDER BY created_at DESC;
		`

	rows, err := r.conn.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch credit transactions for user '%v': %w", userID, err)
	}

	defer rows.Close()

	var transactions []Transaction

	for rows.Next() {
		var tx Transaction
		err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.Type,
			&tx.Amount,
			&tx.Description,
			&tx.GrantedBy,
			&tx.BookingID,
			&tx.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning credit transaction row: %w", err)
		}

		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credit transaction rows: %w", err)
	}

	return transactions, nil
}
