package report

import (
	"context"

	"caminora/internal/domain"
	"caminora/internal/repository"
)

// BookingReportRepository feeds raw booking rows into the aggregator.
type BookingReportRepository interface {
	ListReportRows(ctx context.Context) ([]repository.BookingReportRow, error)
	GetReportRowByID(ctx context.Context, bookingID int64) (*repository.BookingReportRow, error)
}

// RouteRepository feeds routes into the route report.
type RouteRepository interface {
	ListAll(ctx context.Context) ([]domain.Route, error)
}

// DocumentPrinter is the print-to-file collaborator. EnsureWritable is
// the precondition check run before any computation; Print persists the
// rendered document and returns its absolute path.
type DocumentPrinter interface {
	EnsureWritable() error
	Print(ctx context.Context, name string, html string) (string, error)
}

// DocumentSharer hands a generated file off to the user. It returns
// ErrSharingUnavailable when no sharing channel exists, in which case
// the façade falls back to reporting the saved path.
type DocumentSharer interface {
	Share(ctx context.Context, filePath string, title string) error
}
