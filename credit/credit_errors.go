package credit

import "errors"

var ErrInsufficientCredits = errors.New("insufficient credits")

var ErrNegativeAmount = errors.New("amount cannot be negative")
