// Package availability holds the provider calendar: a month-scoped
// repository shared by every screen that needs availability, and the
// editor used on the provider's schedule screen.
package availability

import (
	"context"
	"strings"
	"time"

	"profix/internal/logging"
	"profix/internal/models"

	"github.com/rs/zerolog"
)

// Fetcher is the backend read used by the repository.
type Fetcher interface {
	GetProviderAvailability(ctx context.Context, providerID models.ID, year, month int) ([]models.ProviderAvailability, error)
}

// Month is one fetched month of availability keyed by YYYY-MM-DD.
// Dates without a record are available with default hours.
type Month struct {
	Year  int
	Month time.Month
	Days  map[string]models.ProviderAvailability
}

// Get returns the record stored for date, if any.
func (m *Month) Get(date time.Time) (models.ProviderAvailability, bool) {
	if m == nil {
		return models.ProviderAvailability{}, false
	}
	rec, ok := m.Days[FormatDate(date)]
	return rec, ok
}

func (m *Month) IsUnavailable(date time.Time) bool {
	rec, ok := m.Get(date)
	return ok && rec.IsUnavailable()
}

// Contains reports whether date falls in this month.
func (m *Month) Contains(date time.Time) bool {
	return m != nil && date.Year() == m.Year && date.Month() == m.Month
}

// Repository is the single source of "what is this provider's availability".
// It keeps nothing between calls: every Month call goes to the backend, so
// a screen never renders data older than its own last fetch.
type Repository struct {
	backend Fetcher
	logger  *zerolog.Logger
}

func NewRepository(f Fetcher, logger *zerolog.Logger) *Repository {
	return &Repository{backend: f, logger: logging.Component(logger, "availability")}
}

// Month fetches the records of year/month. A record whose date cannot be
// read is skipped, so that date behaves as available.
func (r *Repository) Month(ctx context.Context, providerID models.ID, year int, month time.Month) (*Month, error) {
	records, err := r.backend.GetProviderAvailability(ctx, providerID, year, int(month))
	if err != nil {
		return nil, err
	}

	m := &Month{Year: year, Month: month, Days: make(map[string]models.ProviderAvailability, len(records))}
	for _, rec := range records {
		day, err := rec.Day()
		if err != nil {
			r.logger.Warn().Err(err).
				Int64("provider_id", int64(providerID)).
				Str("date", rec.Date).
				Msg("skipping unreadable availability record")
			continue
		}
		rec.StartTime = normalizeClock(rec.StartTime, models.DefaultStartTime)
		rec.EndTime = normalizeClock(rec.EndTime, models.DefaultEndTime)
		m.Days[FormatDate(day)] = rec
	}
	return m, nil
}

// IsUnavailable fetches the month containing date and reports whether the
// provider marked that date unavailable.
func (r *Repository) IsUnavailable(ctx context.Context, providerID models.ID, date time.Time) (bool, error) {
	m, err := r.Month(ctx, providerID, date.Year(), date.Month())
	if err != nil {
		return false, err
	}
	return m.IsUnavailable(date), nil
}

// normalizeClock turns the database's "HH:MM:SS" into "HH:MM".
func normalizeClock(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	if len(v) == len("15:04:05") && v[5] == ':' {
		return v[:5]
	}
	return v
}
