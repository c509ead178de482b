package report

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	// taxRate is the VAT rate applied to bookings. Prices are stored
	// tax-inclusive, so the subtotal is derived by dividing it out.
	taxRate = 0.16

	// invoiceValidityDays is how long an issued invoice stays payable.
	invoiceValidityDays = 7
)

// InvoiceData carries every field of the invoice document, already
// formatted for direct template substitution. No further computation
// happens past this point.
type InvoiceData struct {
	InvoiceNumber string
	InvoiceDate   string
	DueDate       string

	CustomerName  string
	CustomerEmail string
	CustomerID    string

	AccommodationName string
	CheckIn           string
	CheckOut          string
	Guests            string
	PaymentStatus     string

	Subtotal   string
	TaxRate    string
	TaxAmount  string
	TotalPrice string
}

// BuildInvoice derives the invoice fields for one booking. The total is
// treated as tax-inclusive; the subtotal is rounded to cents
// half-away-from-zero and the tax amount is the remainder, so
// subtotal + tax always reproduces the total at two decimals.
func BuildInvoice(d BookingDetail, now time.Time) InvoiceData {
	subtotal := roundCents(d.TotalPrice / (1 + taxRate))
	tax := roundCents(d.TotalPrice - subtotal)

	return InvoiceData{
		// Uniqueness is best-effort: id prefix plus a millisecond suffix.
		InvoiceNumber: fmt.Sprintf("FAC-%d-%d", d.ID, now.UnixMilli()),
		InvoiceDate:   formatDate(now),
		DueDate:       formatDate(now.AddDate(0, 0, invoiceValidityDays)),

		CustomerName:  d.UserName,
		CustomerEmail: d.UserEmail,
		CustomerID:    strconv.FormatInt(d.ID, 10),

		AccommodationName: d.AccommodationName,
		CheckIn:           formatDate(d.CheckIn),
		CheckOut:          formatDate(d.CheckOut),
		Guests:            strconv.Itoa(d.Guests),
		PaymentStatus:     paymentStatusLabel(d.PaymentStatus),

		Subtotal:   formatMoney(subtotal),
		TaxRate:    formatPercent(taxRate),
		TaxAmount:  formatMoney(tax),
		TotalPrice: formatMoney(d.TotalPrice),
	}
}

func paymentStatusLabel(status string) string {
	switch status {
	case "paid":
		return "Pagado"
	case "pending":
		return "Pendiente"
	case "refunded":
		return "Reembolsado"
	case "":
		return fallbackValue
	default:
		return status
	}
}

// roundCents rounds half away from zero to two decimals.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(roundCents(v), 'f', 2, 64)
}

func formatPercent(rate float64) string {
	return strconv.FormatFloat(rate*100, 'f', 0, 64) + "%"
}

// formatDate renders day/month/year, zero-padded.
func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// formatDuration renders an estimated time in minutes as "Xh Ym".
func formatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
