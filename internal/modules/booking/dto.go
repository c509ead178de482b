package booking

import "time"

type CreateBookingRequest struct {
	AccommodationID int64     `json:"accommodation_id" binding:"required"`
	UserID          int64     `json:"user_id" binding:"required"`
	CheckIn         time.Time `json:"check_in" binding:"required"`
	CheckOut        time.Time `json:"check_out" binding:"required"`
	Guests          int       `json:"guests" binding:"required"`
	Notes           string    `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}
