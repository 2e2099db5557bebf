package engine

import "errors"

// Error kinds. Operations wrap these with context via fmt.Errorf("%w: …") so
// callers can dispatch on errors.Is. Bankruptcy is not an error: mandatory
// payments always succeed from the caller's perspective and convert a
// shortfall into a bankruptcy transition instead.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrIllegalAction     = errors.New("illegal action")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
