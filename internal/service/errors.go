package service

import "errors"

// Failure taxonomy shared by the services. Handlers map these to HTTP
// statuses with errors.Is; anything else surfaces as a 500.
var (
	ErrNotFound              = errors.New("resource not found")
	ErrCodeNotFoundOrExpired = errors.New("invalid or expired discount code")
	ErrInsufficientStock     = errors.New("insufficient stock for one or more items")
	ErrTotalMismatch         = errors.New("order total does not match authorized payment amount")
	ErrPaymentNotConfirmed   = errors.New("payment has not succeeded")
	ErrDuplicateCode         = errors.New("discount code already exists")
	ErrDuplicateSKU          = errors.New("sku already exists")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrValidation            = errors.New("invalid request")
)
