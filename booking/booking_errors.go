package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidBookingState = errors.New("invalid booking state")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrSlotTaken = errors.New("time slot already taken")

var ErrPastClosing = errors.New("booking extends past closing time")

var ErrInvalidDuration = errors.New("invalid booking duration")

var ErrInvalidSessionType = errors.New("invalid session type")
