package report

import (
	"sort"
	"strings"
	"time"

	"caminora/internal/repository"
)

const (
	unknownUserName          = "Usuario Desconocido"
	unknownAccommodationName = "Alojamiento desconocido"
)

// FinancialStats holds the bucketed revenue totals for one report run.
// Records with a payment status outside the three named buckets still
// count into TotalRevenue/TotalCount but into none of the buckets.
type FinancialStats struct {
	TotalRevenue    float64 `json:"total_revenue"`
	PaidRevenue     float64 `json:"paid_revenue"`
	PendingRevenue  float64 `json:"pending_revenue"`
	RefundedRevenue float64 `json:"refunded_revenue"`

	TotalCount    int `json:"total_count"`
	PaidCount     int `json:"paid_count"`
	PendingCount  int `json:"pending_count"`
	RefundedCount int `json:"refunded_count"`
}

// BookingDetail is the per-booking projection consumed by the report
// screen and by invoice generation. All optional joined fields are
// already resolved to their fallbacks here.
type BookingDetail struct {
	ID                int64     `json:"id"`
	UserName          string    `json:"user_name"`
	UserEmail         string    `json:"user_email,omitempty"`
	AccommodationName string    `json:"accommodation_name"`
	CheckIn           time.Time `json:"check_in"`
	CheckOut          time.Time `json:"check_out"`
	Guests            int       `json:"guests"`
	TotalPrice        float64   `json:"total_price"`
	PaymentStatus     string    `json:"payment_status"`
	BookingStatus     string    `json:"booking_status"`
	CreatedAt         time.Time `json:"created_at"`
}

// Aggregate reduces booking report rows into financial stats and a
// detail list sorted by creation date, most recent first. A nil or
// empty input yields zero stats and an empty list.
func Aggregate(rows []repository.BookingReportRow) (FinancialStats, []BookingDetail) {
	var stats FinancialStats
	details := make([]BookingDetail, 0, len(rows))

	for _, row := range rows {
		stats.TotalRevenue += row.TotalPrice
		stats.TotalCount++

		switch row.PaymentStatus {
		case "paid":
			stats.PaidRevenue += row.TotalPrice
			stats.PaidCount++
		case "pending":
			stats.PendingRevenue += row.TotalPrice
			stats.PendingCount++
		case "refunded":
			stats.RefundedRevenue += row.TotalPrice
			stats.RefundedCount++
		}

		details = append(details, detailFromRow(row))
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].CreatedAt.After(details[j].CreatedAt)
	})

	return stats, details
}

// detailFromRow resolves a raw row's nullable joined columns into the
// presentation-ready detail.
func detailFromRow(row repository.BookingReportRow) BookingDetail {
	return BookingDetail{
		ID:                row.ID,
		UserName:          resolveUserName(row.UserFirstName, row.UserLastName),
		UserEmail:         deref(row.UserEmail),
		AccommodationName: resolveAccommodationName(row.AccommodationName),
		CheckIn:           row.CheckIn,
		CheckOut:          row.CheckOut,
		Guests:            row.Guests,
		TotalPrice:        row.TotalPrice,
		PaymentStatus:     row.PaymentStatus,
		BookingStatus:     row.BookingStatus,
		CreatedAt:         row.CreatedAt,
	}
}

func resolveUserName(first, last *string) string {
	parts := make([]string, 0, 2)
	if first != nil && strings.TrimSpace(*first) != "" {
		parts = append(parts, strings.TrimSpace(*first))
	}
	if last != nil && strings.TrimSpace(*last) != "" {
		parts = append(parts, strings.TrimSpace(*last))
	}
	name := strings.Join(parts, " ")
	if name == "" {
		return unknownUserName
	}
	return name
}

func resolveAccommodationName(name *string) string {
	if name == nil || strings.TrimSpace(*name) == "" {
		return unknownAccommodationName
	}
	return strings.TrimSpace(*name)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
