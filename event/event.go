package event

import (
	"slices"
	"time"
)

type Type string

const (
	TypeOpenMic        Type = "open-mic"
	TypeListeningParty Type = "listening-party"
	TypeWorkshop       Type = "workshop"
	TypePrivate        Type = "private"
)

func (t Type) Valid() bool {
	switch t {
	case TypeOpenMic, TypeListeningParty, TypeWorkshop, TypePrivate:
		return true
	}
	return false
}

// Event is a studio-hosted happening. It occupies time-grid slots exactly
// like a booking and always wins: slots covered by an event are never
// offered as bookable.
type Event struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           Type      `json:"type"`
	Description    string    `json:"description"`
	Date           time.Time `json:"date"`
	TimeSlot       string    `json:"timeSlot"`
	Duration       int       `json:"duration"`
	MaxAttendees   int       `json:"maxAttendees"`
	Price          float64   `json:"price"`
	AutoPostToFeed bool      `json:"autoPostToFeed"`
	RSVPs          []string  `json:"rsvps"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CurrentAttendees is derived from the RSVP set, so the two can never
// disagree.
func (e Event) CurrentAttendees() int {
	return len(e.RSVPs)
}

func (e Event) HasRSVP(userID string) bool {
	return slices.Contains(e.RSVPs, userID)
}

func (e Event) Full() bool {
	return e.CurrentAttendees() >= e.MaxAttendees
}
