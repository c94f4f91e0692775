package notify

import (
	"encoding/json"
	"fmt"
)

// Routing keys published on the topic exchange. The notification consumer
// binds to all of them.
const (
	RKBookingCreated   = "booking.created"
	RKBookingConfirmed = "booking.confirmed"
	RKBookingCancelled = "booking.cancelled"
	RKBookingCompleted = "booking.completed"

	RKPaymentCaptured = "payment.captured"
	RKPaymentFailed   = "payment.failed"
	RKPaymentRefunded = "payment.refunded"

	RKEventCreated = "event.created"
)

type BookingEvent struct {
	BookingID   string `json:"booking_id"`
	UserID      string `json:"user_id"`
	SessionType string `json:"session_type"`
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	Duration    int    `json:"duration"`
	Reason      string `json:"reason,omitempty"`
}

type PaymentEvent struct {
	TransactionID string  `json:"transaction_id"`
	BookingID     string  `json:"booking_id,omitempty"`
	UserID        string  `json:"user_id"`
	Amount        float64 `json:"amount"`
}

type StudioEvent struct {
	EventID  string `json:"event_id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}

func Unmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload failed: %w", err)
	}
	return t, nil
}
