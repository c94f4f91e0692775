package session

import "errors"

var ErrSessionNotFound = errors.New("session not found")

var ErrAlreadyDelivered = errors.New("session already delivered")
