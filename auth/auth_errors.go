package auth

import "errors"

var ErrProfileNotFound = errors.New("profile not found")

var ErrInvalidCredentials = errors.New("invalid username or password")

var ErrInvalidToken = errors.New("invalid or expired token")

var ErrUsernameTaken = errors.New("username already taken")
