package report

import "errors"

var (
	ErrBookingNotFound      = errors.New("booking not found in report data")
	ErrGenerationInProgress = errors.New("document generation already in progress")
	ErrPermissionDenied     = errors.New("document storage is not writable")
	ErrSharingUnavailable   = errors.New("sharing is unavailable")
)
