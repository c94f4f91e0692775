package payment

import "errors"

var ErrPaymentFailed = errors.New("payment failed")

var ErrTransactionNotFound = errors.New("payment transaction not found")

var ErrRefundExceedsAvailable = errors.New("refund amount exceeds refundable balance")

var ErrInvalidTransactionState = errors.New("invalid transaction state")

var ErrInvalidAmount = errors.New("amount must be positive")
