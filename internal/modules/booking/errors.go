package booking

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotAvailable  = errors.New("accommodation not available for these dates")
	ErrTooManyGuests = errors.New("guest count exceeds accommodation capacity")
	ErrDoubleBooking = errors.New("double booking constraint violation")
	ErrNotFound      = errors.New("booking not found")
)
