package report

import (
	"testing"
	"time"

	"caminora/internal/repository"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func day(d int) time.Time {
	return time.Date(2026, 5, d, 12, 0, 0, 0, time.UTC)
}

func TestAggregate_BucketsAndTotals(t *testing.T) {
	rows := []repository.BookingReportRow{
		{ID: 1, TotalPrice: 100, PaymentStatus: "paid", CreatedAt: day(1)},
		{ID: 2, TotalPrice: 50, PaymentStatus: "pending", CreatedAt: day(2)},
		{ID: 3, TotalPrice: 30, PaymentStatus: "refunded", CreatedAt: day(3)},
		{ID: 4, TotalPrice: 200, PaymentStatus: "paid", CreatedAt: day(4)},
	}

	stats, details := Aggregate(rows)

	assert.Equal(t, 380.0, stats.TotalRevenue)
	assert.Equal(t, 4, stats.TotalCount)
	assert.Equal(t, 300.0, stats.PaidRevenue)
	assert.Equal(t, 2, stats.PaidCount)
	assert.Equal(t, 50.0, stats.PendingRevenue)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 30.0, stats.RefundedRevenue)
	assert.Equal(t, 1, stats.RefundedCount)
	assert.Len(t, details, 4)
}

func TestAggregate_UnknownStatusCountsOnlyInTotals(t *testing.T) {
	// Records with an unrecognized payment status contribute to the
	// grand totals but to none of the named buckets.
	rows := []repository.BookingReportRow{
		{ID: 1, TotalPrice: 100, PaymentStatus: "paid", CreatedAt: day(1)},
		{ID: 2, TotalPrice: 77, PaymentStatus: "disputed", CreatedAt: day(2)},
		{ID: 3, TotalPrice: 23, PaymentStatus: "", CreatedAt: day(3)},
	}

	stats, _ := Aggregate(rows)

	assert.Equal(t, 200.0, stats.TotalRevenue)
	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, 100.0, stats.PaidRevenue)
	assert.Equal(t, 1, stats.PaidCount)
	assert.Equal(t, 0.0, stats.PendingRevenue)
	assert.Equal(t, 0.0, stats.RefundedRevenue)

	bucketed := stats.PaidRevenue + stats.PendingRevenue + stats.RefundedRevenue
	assert.Equal(t, 100.0, stats.TotalRevenue-bucketed)
}

func TestAggregate_SortsByCreatedAtDescending(t *testing.T) {
	rows := []repository.BookingReportRow{
		{ID: 1, PaymentStatus: "paid", CreatedAt: day(1)},
		{ID: 3, PaymentStatus: "paid", CreatedAt: day(3)},
		{ID: 2, PaymentStatus: "paid", CreatedAt: day(2)},
	}

	_, details := Aggregate(rows)

	assert.Equal(t, int64(3), details[0].ID)
	assert.Equal(t, int64(2), details[1].ID)
	assert.Equal(t, int64(1), details[2].ID)
}

func TestAggregate_NameResolution(t *testing.T) {
	rows := []repository.BookingReportRow{
		{ID: 1, PaymentStatus: "paid", UserFirstName: strptr("Lucía"), UserLastName: strptr("Paz")},
		{ID: 2, PaymentStatus: "paid", UserFirstName: strptr("  Carlos  ")},
		{ID: 3, PaymentStatus: "paid", UserFirstName: strptr("   "), UserLastName: strptr("")},
		{ID: 4, PaymentStatus: "paid"},
	}

	_, details := Aggregate(rows)

	byID := map[int64]BookingDetail{}
	for _, d := range details {
		byID[d.ID] = d
	}

	assert.Equal(t, "Lucía Paz", byID[1].UserName)
	assert.Equal(t, "Carlos", byID[2].UserName)
	assert.Equal(t, "Usuario Desconocido", byID[3].UserName)
	assert.Equal(t, "Usuario Desconocido", byID[4].UserName)
}

func TestAggregate_AccommodationFallback(t *testing.T) {
	rows := []repository.BookingReportRow{
		{ID: 1, PaymentStatus: "paid", AccommodationName: strptr("Cabaña del Lago")},
		{ID: 2, PaymentStatus: "paid", AccommodationName: strptr("  ")},
		{ID: 3, PaymentStatus: "paid"},
	}

	_, details := Aggregate(rows)

	byID := map[int64]BookingDetail{}
	for _, d := range details {
		byID[d.ID] = d
	}

	assert.Equal(t, "Cabaña del Lago", byID[1].AccommodationName)
	assert.Equal(t, "Alojamiento desconocido", byID[2].AccommodationName)
	assert.Equal(t, "Alojamiento desconocido", byID[3].AccommodationName)
}

func TestAggregate_EmptyInput(t *testing.T) {
	stats, details := Aggregate(nil)

	assert.Equal(t, FinancialStats{}, stats)
	assert.NotNil(t, details)
	assert.Empty(t, details)

	stats, details = Aggregate([]repository.BookingReportRow{})
	assert.Equal(t, FinancialStats{}, stats)
	assert.Empty(t, details)
}
