package notification

import (
	"context"
	"time"
)

type event struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	BookingID int64     `json:"booking_id,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// Service pushes lifecycle events over the hub. Delivery is
// best-effort: an offline recipient simply misses the push.
type Service struct {
	hub *Hub
}

func NewService(hub *Hub) *Service {
	return &Service{hub: hub}
}

func (s *Service) NotifyBookingCreated(ctx context.Context, hostUserID, bookingID, accommodationID int64, checkIn time.Time) error {
	s.hub.SendToUser(hostUserID, event{
		Type:      "booking_created",
		Message:   "Nueva reserva recibida",
		BookingID: bookingID,
		SentAt:    time.Now(),
	})
	return nil
}

func (s *Service) NotifyBookingConfirmed(ctx context.Context, clientUserID, bookingID int64) error {
	s.hub.SendToUser(clientUserID, event{
		Type:      "booking_confirmed",
		Message:   "Tu reserva ha sido confirmada",
		BookingID: bookingID,
		SentAt:    time.Now(),
	})
	return nil
}

func (s *Service) NotifyBookingCancelled(ctx context.Context, clientUserID, bookingID int64, reason string) error {
	s.hub.SendToUser(clientUserID, event{
		Type:      "booking_cancelled",
		Message:   "Reserva cancelada: " + reason,
		BookingID: bookingID,
		SentAt:    time.Now(),
	})
	return nil
}
