package screens

import (
	"context"
	"fmt"
	"time"

	"profix/internal/export"
	"profix/internal/models"
)

type Period int

const (
	PeriodWeek Period = iota
	PeriodMonth
	PeriodAll
)

func (p Period) String() string {
	switch p {
	case PeriodWeek:
		return "This Week"
	case PeriodMonth:
		return "This Month"
	default:
		return "All Time"
	}
}

func ParsePeriod(s string) (Period, error) {
	switch s {
	case "week":
		return PeriodWeek, nil
	case "month":
		return PeriodMonth, nil
	case "all", "":
		return PeriodAll, nil
	}
	return PeriodAll, fmt.Errorf("unknown period %q (want week, month or all)", s)
}

type EarningsBackend interface {
	GetProviderBookings(ctx context.Context, providerID models.ID) ([]models.Booking, error)
	GetProviderStats(ctx context.Context, providerID models.ID) (*models.ProviderStats, error)
}

// Earnings is the provider's earnings history: completed jobs only.
type Earnings struct {
	status
	backend    EarningsBackend
	providerID models.ID
	completed  []models.Booking
	stats      *models.ProviderStats
	now        func() time.Time
}

func NewEarnings(backend EarningsBackend, providerID models.ID) *Earnings {
	return &Earnings{backend: backend, providerID: providerID, now: time.Now}
}

// Load fetches bookings and stats. A stats failure sets Message but the
// list still shows.
func (e *Earnings) Load(ctx context.Context) error {
	e.begin()
	defer e.end()

	list, err := e.backend.GetProviderBookings(ctx, e.providerID)
	if err != nil {
		e.message = failure(err, "Failed to load earnings")
		return err
	}
	e.completed = FilterBookings(list, TabCompleted, false)

	stats, err := e.backend.GetProviderStats(ctx, e.providerID)
	if err != nil {
		e.message = failure(err, "Failed to load stats")
		e.stats = nil
		return nil
	}
	e.stats = stats
	return nil
}

func (e *Earnings) Stats() *models.ProviderStats { return e.stats }

// In returns completed bookings within the period. The week and month
// windows count back from now; a booking with an unreadable date is kept.
func (e *Earnings) In(p Period) []models.Booking {
	if p == PeriodAll {
		return e.completed
	}
	now := e.now()
	from := now.AddDate(0, 0, -7)
	if p == PeriodMonth {
		from = now.AddDate(0, -1, 0)
	}
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)

	var out []models.Booking
	for _, b := range e.completed {
		d, err := time.Parse(models.DateLayout, b.BookingDate)
		if err != nil || !d.Before(from) {
			out = append(out, b)
		}
	}
	return out
}

// Total sums total_amount over the period.
func (e *Earnings) Total(p Period) float64 {
	var sum float64
	for _, b := range e.In(p) {
		sum += float64(b.TotalAmount)
	}
	return sum
}

// Export builds the workbook data for the period.
func (e *Earnings) Export(p Period, providerName string) export.Earnings {
	return export.Earnings{
		ProviderID:   e.providerID,
		ProviderName: providerName,
		Period:       p.String(),
		Bookings:     e.In(p),
		Stats:        e.stats,
		GeneratedAt:  e.now(),
	}
}
