package domain

import "errors"

// Sentinel errors for trading-rule violations. The handler layer maps these
// to HTTP status codes; callers match with errors.Is since call sites wrap
// them with %w to add context (requested/available counts, the ticker).
var (
	ErrTickerNotFound     = errors.New("ticker not found")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInsufficientShares = errors.New("insufficient shares")
)
