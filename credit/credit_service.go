package credit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=credit_service.go -destination=mocks/mock_credit_service.go -package=mocks

type CreditRepository interface {
	InsertTransaction(ctx context.Context, tx Transaction) (Transaction, error)
	GetBalance(ctx context.Context, userID string) (float64, error)
	GetTransactionsPerUser(ctx context.Context, userID string) ([]Transaction, error)
}

type Service struct {
	repo          CreditRepository
	referralBonus float64
}

func NewService(repo CreditRepository, referralBonus float64) *Service {
	return &Service{repo: repo, referralBonus: referralBonus}
}

func (s *Service) Balance(ctx context.Context, userID string) (float64, error) {
	return s.repo.GetBalance(ctx, userID)
}

func (s *Service) History(ctx context.Context, userID string) ([]Transaction, error) {
	return s.repo.GetTransactionsPerUser(ctx, userID)
}

// UseCredits appends a 'used' entry to the ledger. It fails with
// ErrInsufficientCredits when amount exceeds the current balance, leaving
// the ledger untouched.
func (s *Service) UseCredits(ctx context.Context, userID string, amount float64, bookingID, description string) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrNegativeAmount
	}

	balance, err := s.repo.GetBalance(ctx, userID)

	if err != nil {
		return Transaction{}, err
	}

	if amount > balance {
		return Transaction{}, ErrInsufficientCredits
	}

	return s.repo.InsertTransaction(ctx, Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        TransactionUsed,
		Amount:      amount,
		Description: description,
		BookingID:   bookingID,
	})
}

// GrantCredits appends a 'granted' entry. No upper bound is enforced.
func (s *Service) GrantCredits(ctx context.Context, userID string, amount float64, description, grantedBy string) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrNegativeAmount
	}

	return s.repo.InsertTransaction(ctx, Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        TransactionGranted,
		Amount:      amount,
		Description: description,
		GrantedBy:   grantedBy,
	})
}

// GrantReferralBonus credits the referrer after one of their invitees signs
// up. The grantor is recorded as the system, not an admin.
func (s *Service) GrantReferralBonus(ctx context.Context, userID, referredUserID string) (Transaction, error) {
	description := fmt.Sprintf("referral bonus for inviting user %v", referredUserID)

	return s.GrantCredits(ctx, userID, s.referralBonus, description, "system")
}
