package credit

import "time"

type TransactionType string

const (
	TransactionGranted TransactionType = "granted"
	TransactionUsed    TransactionType = "used"
)

type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	GrantedBy   string          `json:"grantedBy,omitempty"`
	BookingID   string          `json:"bookingId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Usage is the split of a booking price between the user's credit balance
// and the amount still owed.
type Usage struct {
	CreditsToUse   float64 `json:"creditsToUse"`
	RemainingPrice float64 `json:"remainingPrice"`
	CanCoverFull   bool    `json:"canCoverFull"`
}

// CalculateUsage computes how much of price is covered by the balance and
// how much requires payment. CreditsToUse + RemainingPrice always equals
// price exactly.
func CalculateUsage(balance, price float64) (Usage, error) {
	if balance < 0 || price < 0 {
		return Usage{}, ErrNegativeAmount
	}

	creditsToUse := min(balance, price)

	return Usage{
		CreditsToUse:   creditsToUse,
		RemainingPrice: price - creditsToUse,
		CanCoverFull:   creditsToUse == price,
	}, nil
}
