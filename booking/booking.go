package booking

import (
	"slices"
	"time"
)

type SessionType string

const (
	SessionMusic   SessionType = "music"
	SessionPodcast SessionType = "podcast"
)

func (t SessionType) Valid() bool {
	return t == SessionMusic || t == SessionPodcast
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions lists the reachable statuses from each state. Completed and
// cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	return slices.Contains(transitions[from], to)
}

// prices is the flat rate card per block length in hours.
var prices = map[int]float64{
	1: 60,
	2: 110,
	3: 160,
	4: 200,
	8: 380,
}

func PriceFor(hours int) (float64, error) {
	price, ok := prices[hours]

	if !ok {
		return 0, ErrInvalidDuration
	}

	return price, nil
}

type Booking struct {
	ID                 string      `json:"id"`
	UserID             string      `json:"userId"`
	Username           string      `json:"username,omitempty"`
	SessionType        SessionType `json:"sessionType"`
	Date               time.Time   `json:"date"`
	TimeSlot           string      `json:"timeSlot"`
	Duration           int         `json:"duration"`
	Price              float64     `json:"price"`
	Status             Status      `json:"status"`
	Notes              string      `json:"notes"`
	CancellationReason string      `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// SlotAvailability is one row of the per-day availability grid.
type SlotAvailability struct {
	TimeSlot string `json:"timeSlot"`
	Booked   bool   `json:"booked"`
}
