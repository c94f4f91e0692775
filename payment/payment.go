package payment

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

// Transaction records one charge against a payment method. RefundedAmount
// never exceeds Amount; the status flips to refunded only when the full
// amount has been refunded, partial refunds stay completed.
type Transaction struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	BookingID       string     `json:"bookingId,omitempty"`
	PaymentMethodID string     `json:"paymentMethodId"`
	Description     string     `json:"description"`
	Amount          float64    `json:"amount"`
	RefundedAmount  float64    `json:"refundedAmount"`
	Status          Status     `json:"status"`
	Date            time.Time  `json:"date"`
	RefundDate      *time.Time `json:"refundDate,omitempty"`
}
