// Package schedule models the studio's fixed daily time grid: 13 hourly
// slots from 9:00 AM to 9:00 PM. Bookings and events reserve a contiguous
// run of slots, clamped at the end of the day.
package schedule

import (
	"errors"
	"slices"
	"time"
)

const SlotsPerDay = 13

var ErrUnknownSlot = errors.New("unknown time slot")

var labels = [SlotsPerDay]string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM",
	"5:00 PM", "6:00 PM", "7:00 PM", "8:00 PM",
	"9:00 PM",
}

// Slot is an index into the daily grid.
type Slot int

// ParseSlot maps a grid label to its slot. Labels outside the grid are
// rejected rather than treated as free.
func ParseSlot(label string) (Slot, error) {
	idx := slices.Index(labels[:], label)

	if idx < 0 {
		return 0, ErrUnknownSlot
	}

	return Slot(idx), nil
}

func (s Slot) Valid() bool {
	return s >= 0 && s < SlotsPerDay
}

func (s Slot) Label() string {
	if !s.Valid() {
		return ""
	}

	return labels[s]
}

// Grid returns the ordered slot labels for one day. The slice is a copy, so
// callers cannot mutate the grid.
func Grid() []string {
	return slices.Clone(labels[:])
}

// Span returns the slots occupied by a reservation of the given duration in
// hours, starting at start. The span is clamped at the last slot of the day;
// there is no wraparound to the next day.
func Span(start Slot, hours int) []Slot {
	if !start.Valid() || hours <= 0 {
		return nil
	}

	end := min(int(start)+hours, SlotsPerDay)

	span := make([]Slot, 0, end-int(start))

	for i := int(start); i < end; i++ {
		span = append(span, Slot(i))
	}

	return span
}

// Truncated reports whether a reservation of the given duration starting at
// start would run past closing and lose hours to the day boundary.
func Truncated(start Slot, hours int) bool {
	return start.Valid() && hours > 0 && int(start)+hours > SlotsPerDay
}

// Overlaps reports whether two spans share any slot.
func Overlaps(a, b []Slot) bool {
	for _, s := range a {
		if slices.Contains(b, s) {
			return true
		}
	}

	return false
}

// Day truncates a timestamp to its calendar date in UTC. All date matching
// for slot conflicts is done on this value, never on the time of day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
