package rental

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrBikeNotFound  = errors.New("bike not found")
	ErrBikeTaken     = errors.New("bike is not available")
	ErrAlreadyClosed = errors.New("rental already closed")
)
