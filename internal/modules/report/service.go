package report

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"
)

// routeReportKey marks the whole-report generation slot in the same
// state map used for per-booking invoices. Booking ids are positive,
// so the key can never collide.
const routeReportKey int64 = -1

type Service struct {
	bookings BookingReportRepository
	routes   RouteRepository
	printer  DocumentPrinter
	sharer   DocumentSharer

	mu         sync.Mutex
	generating map[int64]bool

	now func() time.Time
}

func NewService(
	bookings BookingReportRepository,
	routes RouteRepository,
	printer DocumentPrinter,
	sharer DocumentSharer,
) *Service {
	return &Service{
		bookings:   bookings,
		routes:     routes,
		printer:    printer,
		sharer:     sharer,
		generating: make(map[int64]bool),
		now:        time.Now,
	}
}

// FinancialReport fetches all booking rows and aggregates them.
func (s *Service) FinancialReport(ctx context.Context) (*FinancialReportResponse, error) {
	rows, err := s.bookings.ListReportRows(ctx)
	if err != nil {
		return nil, err
	}

	stats, details := Aggregate(rows)
	return &FinancialReportResponse{Stats: stats, Bookings: details}, nil
}

// GenerateInvoice runs the full generation sequence for one booking:
// precondition check, derivation, rendering, print to file, share.
// A second call for the same booking while one is in flight returns
// ErrGenerationInProgress without performing any I/O. Generations for
// different bookings run independently.
func (s *Service) GenerateInvoice(ctx context.Context, bookingID int64) (*DocumentResult, error) {
	if err := s.acquire(bookingID); err != nil {
		return nil, err
	}
	defer s.release(bookingID)

	if err := s.printer.EnsureWritable(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}

	detail, err := s.findBookingDetail(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	inv := BuildInvoice(*detail, s.now())
	html := RenderInvoice(inv)

	name := fmt.Sprintf("factura_%d.html", bookingID)
	path, err := s.printer.Print(ctx, name, html)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Factura reserva #%d", bookingID)
	return s.handOff(ctx, path, title), nil
}

// GenerateRouteReport renders the tabular route document. The state
// slot is shared by all callers: the route report is one artifact.
func (s *Service) GenerateRouteReport(ctx context.Context) (*DocumentResult, error) {
	if err := s.acquire(routeReportKey); err != nil {
		return nil, err
	}
	defer s.release(routeReportKey)

	if err := s.printer.EnsureWritable(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}

	routes, err := s.routes.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	html := RenderRouteReport(routes, s.now())

	path, err := s.printer.Print(ctx, "informe_rutas.html", html)
	if err != nil {
		return nil, err
	}

	return s.handOff(ctx, path, "Informe de rutas"), nil
}

func (s *Service) findBookingDetail(ctx context.Context, bookingID int64) (*BookingDetail, error) {
	row, err := s.bookings.GetReportRowByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	detail := detailFromRow(*row)
	return &detail, nil
}

// handOff shares the printed file; when sharing is unavailable the
// saved path is surfaced as a terminal success instead of an error.
// The file is already on disk at this point, so a failed share never
// fails the generation.
func (s *Service) handOff(ctx context.Context, path, title string) *DocumentResult {
	if err := s.sharer.Share(ctx, path, title); err != nil {
		if !errors.Is(err, ErrSharingUnavailable) {
			log.Printf("report: sharing %q failed: %v", path, err)
		}
		return &DocumentResult{
			FilePath: path,
			Shared:   false,
			Message:  fmt.Sprintf("Documento guardado en %s", path),
		}
	}

	return &DocumentResult{
		FilePath: path,
		Shared:   true,
		Message:  title,
	}
}

func (s *Service) acquire(key int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generating[key] {
		return ErrGenerationInProgress
	}
	s.generating[key] = true
	return nil
}

func (s *Service) release(key int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.generating, key)
}
