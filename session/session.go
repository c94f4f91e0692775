// Package session tracks the file-delivery record created when a studio
// booking is completed: exactly one session per booking, created in draft
// status and marked delivered once the files are up.
package session

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusDelivered Status = "delivered"
)

type Session struct {
	ID          string     `json:"id"`
	BookingID   string     `json:"bookingId"`
	UserID      string     `json:"userId"`
	Status      Status     `json:"status"`
	Files       []string   `json:"files"`
	CreatedAt   time.Time  `json:"createdAt"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}
