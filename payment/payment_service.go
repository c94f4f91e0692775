package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/booth33/studio-backend/notify"
	"github.com/google/uuid"
)

//go:generate mockgen -source=payment_service.go -destination=mocks/mock_payment_service.go -package=mocks

type PaymentRepository interface {
	InsertTransaction(ctx context.Context, tx Transaction) (Transaction, error)
	GetTransactionByID(ctx context.Context, id string) (Transaction, error)
	GetTransactionsPerUser(ctx context.Context, userID string) ([]Transaction, error)
	UpdateRefund(ctx context.Context, id string, refundedAmount float64, status Status, refundDate time.Time) error
}

type Service struct {
	repo      PaymentRepository
	processor Processor
	publisher notify.Publisher
}

func NewService(repo PaymentRepository, processor Processor, publisher notify.Publisher) *Service {
	return &Service{repo: repo, processor: processor, publisher: publisher}
}

// Charge settles amount against the user's payment method and records the
// outcome. Failed charges are recorded too, then reported as
// ErrPaymentFailed.
func (s *Service) Charge(ctx context.Context, userID string, amount float64, bookingID, paymentMethodID, description string) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}

	tx := Transaction{
		ID:              uuid.NewString(),
		UserID:          userID,
		BookingID:       bookingID,
		PaymentMethodID: paymentMethodID,
		Description:     description,
		Amount:          amount,
	}

	if processErr := s.processor.Process(ctx, amount, paymentMethodID); processErr != nil {
		tx.Status = StatusFailed
		recorded, err := s.repo.InsertTransaction(ctx, tx)

		if err != nil {
			return Transaction{}, err
		}

		s.publisher.PublishJSON(ctx, notify.RKPaymentFailed, notify.PaymentEvent{
			TransactionID: recorded.ID,
			BookingID:     bookingID,
			UserID:        userID,
			Amount:        amount,
		})

		return recorded, fmt.Errorf("charge of %.2f declined: %w", amount, processErr)
	}

	tx.Status = StatusCompleted
	recorded, err := s.repo.InsertTransaction(ctx, tx)

	if err != nil {
		return Transaction{}, err
	}

	s.publisher.PublishJSON(ctx, notify.RKPaymentCaptured, notify.PaymentEvent{
		TransactionID: recorded.ID,
		BookingID:     bookingID,
		UserID:        userID,
		Amount:        amount,
	})

	return recorded, nil
}

// Refund returns part or all of a completed charge. The transaction becomes
// refunded only once the full amount has been returned; partial refunds
// leave it completed with the refunded amount recorded.
func (s *Service) Refund(ctx context.Context, id string, amount float64) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}

	tx, err := s.repo.GetTransactionByID(ctx, id)

	if err != nil {
		return Transaction{}, err
	}

	if tx.Status != StatusCompleted {
		return Transaction{}, ErrInvalidTransactionState
	}

	available := tx.Amount - tx.RefundedAmount

	// Amounts are dollars with cents; compare at half-cent tolerance so
	// accumulated float error across partial refunds cannot block the final
	// refund or leave a fully refunded charge marked completed.
	if amount > available+0.005 {
		return Transaction{}, ErrRefundExceedsAvailable
	}

	tx.RefundedAmount += amount

	if tx.Amount-tx.RefundedAmount < 0.005 {
		tx.RefundedAmount = tx.Amount
		tx.Status = StatusRefunded
	}

	now := time.Now()
	tx.RefundDate = &now

	err = s.repo.UpdateRefund(ctx, id, tx.RefundedAmount, tx.Status, now)

	if err != nil {
		return Transaction{}, err
	}

	s.publisher.PublishJSON(ctx, notify.RKPaymentRefunded, notify.PaymentEvent{
		TransactionID: tx.ID,
		BookingID:     tx.BookingID,
		UserID:        tx.UserID,
		Amount:        amount,
	})

	return tx, nil
}

func (s *Service) FindTransactionByID(ctx context.Context, id string) (Transaction, error) {
	return s.repo.GetTransactionByID(ctx, id)
}

func (s *Service) FindTransactionsPerUser(ctx context.Context, userID string) ([]Transaction, error) {
	return s.repo.GetTransactionsPerUser(ctx, userID)
}
