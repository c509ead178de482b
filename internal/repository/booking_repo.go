package repository

import (
	"context"
	"time"

	"caminora/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	AccommodationID    int64      `gorm:"column:accommodation_id"`
	UserID             int64      `gorm:"column:user_id"`
	CheckIn            time.Time  `gorm:"column:check_in"`
	CheckOut           time.Time  `gorm:"column:check_out"`
	Guests             int        `gorm:"column:guests"`
	TotalPrice         float64    `gorm:"column:total_price"`
	Status             string     `gorm:"column:status"`
	PaymentStatus      string     `gorm:"column:payment_status"`
	Notes              *string    `gorm:"column:notes"`
	CancellationReason *string    `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

// BookingReportRow is the raw LEFT JOIN projection consumed by the
// financial report aggregator. Joined user/accommodation columns are
// nullable: the row survives deleted or incomplete relations.
type BookingReportRow struct {
	ID                int64     `gorm:"column:id"`
	TotalPrice        float64   `gorm:"column:total_price"`
	PaymentStatus     string    `gorm:"column:payment_status"`
	BookingStatus     string    `gorm:"column:status"`
	CheckIn           time.Time `gorm:"column:check_in"`
	CheckOut          time.Time `gorm:"column:check_out"`
	Guests            int       `gorm:"column:guests"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UserFirstName     *string   `gorm:"column:user_first_name"`
	UserLastName      *string   `gorm:"column:user_last_name"`
	UserEmail         *string   `gorm:"column:user_email"`
	AccommodationName *string   `gorm:"column:accommodation_name"`
}

// UserBookingDetails is the joined row for the "my bookings" screen.
type UserBookingDetails struct {
	ID                int64     `gorm:"column:id" json:"id"`
	Status            string    `gorm:"column:status" json:"status"`
	PaymentStatus     string    `gorm:"column:payment_status" json:"payment_status"`
	CheckIn           time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut          time.Time `gorm:"column:check_out" json:"check_out"`
	Guests            int       `gorm:"column:guests" json:"guests"`
	TotalPrice        float64   `gorm:"column:total_price" json:"total_price"`
	AccommodationID   int64     `gorm:"column:accommodation_id" json:"accommodation_id"`
	AccommodationName string    `gorm:"column:accommodation_name" json:"accommodation_name"`
	City              string    `gorm:"column:city" json:"city"`
}

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes, reason string
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.CancellationReason != nil {
		reason = *m.CancellationReason
	}

	return &domain.Booking{
		ID:                 m.ID,
		AccommodationID:    m.AccommodationID,
		UserID:             m.UserID,
		CheckIn:            m.CheckIn,
		CheckOut:           m.CheckOut,
		Guests:             m.Guests,
		TotalPrice:         m.TotalPrice,
		Status:             domain.BookingStatus(m.Status),
		PaymentStatus:      domain.PaymentStatus(m.PaymentStatus),
		Notes:              notes,
		CancellationReason: reason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		CancelledAt:        m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes, reason *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}
	if b.CancellationReason != "" {
		v := b.CancellationReason
		reason = &v
	}

	return bookingModel{
		ID:                 b.ID,
		AccommodationID:    b.AccommodationID,
		UserID:             b.UserID,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		Guests:             b.Guests,
		TotalPrice:         b.TotalPrice,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		Notes:              notes,
		CancellationReason: reason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		CancelledAt:        b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) CheckAvailability(ctx context.Context, accommodationID int64, checkIn, checkOut time.Time) (bool, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE accommodation_id = ?
  AND status NOT IN ('cancelled')
  AND check_in < ?
  AND check_out > ?
`
	tx := r.db.WithContext(ctx).Raw(q, accommodationID, checkOut, checkIn).Scan(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt == 0, nil
}

func (r *BookingRepository) GetUserBookingsWithDetails(ctx context.Context, userID int64, limit, offset int) ([]UserBookingDetails, error) {
	var rows []UserBookingDetails
	q := `
SELECT b.id, b.status, b.payment_status, b.check_in, b.check_out, b.guests, b.total_price,
       a.id AS accommodation_id, a.name AS accommodation_name, a.city
FROM bookings b
JOIN accommodations a ON a.id = b.accommodation_id
WHERE b.user_id = ?
ORDER BY b.created_at DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, userID, limit, offset).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// ListReportRows returns every booking with its (possibly absent) user
// and accommodation names for the admin financial report.
func (r *BookingRepository) ListReportRows(ctx context.Context) ([]BookingReportRow, error) {
	var rows []BookingReportRow
	q := `
SELECT b.id, b.total_price, b.payment_status, b.status, b.check_in, b.check_out,
       b.guests, b.created_at,
       u.first_name AS user_first_name,
       u.last_name  AS user_last_name,
       u.email      AS user_email,
       a.name       AS accommodation_name
FROM bookings b
LEFT JOIN users u ON u.id = b.user_id
LEFT JOIN accommodations a ON a.id = b.accommodation_id
ORDER BY b.created_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// GetReportRowByID returns the report projection of one booking.
func (r *BookingRepository) GetReportRowByID(ctx context.Context, bookingID int64) (*BookingReportRow, error) {
	var rows []BookingReportRow
	q := `
SELECT b.id, b.total_price, b.payment_status, b.status, b.check_in, b.check_out,
       b.guests, b.created_at,
       u.first_name AS user_first_name,
       u.last_name  AS user_last_name,
       u.email      AS user_email,
       a.name       AS accommodation_name
FROM bookings b
LEFT JOIN users u ON u.id = b.user_id
LEFT JOIN accommodations a ON a.id = b.accommodation_id
WHERE b.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, bookingID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *BookingRepository) GetHostForBooking(ctx context.Context, bookingID int64) (int64, error) {
	var hostID int64
	q := `
SELECT a.host_id
FROM bookings b
JOIN accommodations a ON a.id = b.accommodation_id
WHERE b.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, bookingID).Scan(&hostID)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return hostID, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) Cancel(ctx context.Context, bookingID int64, reason string) error {
	now := time.Now()
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status NOT IN ('cancelled')", bookingID).
		Updates(map[string]any{
			"status":              string(domain.BookingCancelled),
			"cancellation_reason": reason,
			"cancelled_at":        now,
			"updated_at":          now,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) (*domain.Booking, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{"payment_status": string(status), "updated_at": time.Now()})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, bookingID)
}
