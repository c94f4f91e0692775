package event

import "errors"

var ErrEventNotFound = errors.New("event not found")

var ErrEventFull = errors.New("event is at capacity")

var ErrInvalidEventType = errors.New("invalid event type")

var ErrInvalidEventTimes = errors.New("invalid event date or duration")
