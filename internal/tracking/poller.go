// Package tracking runs the two location loops of an active booking: the
// customer polling the provider's position and the provider pushing it.
package tracking

import (
	"context"
	"time"

	"profix/internal/metrics"
	"profix/internal/models"

	"github.com/rs/zerolog"
)

const (
	pollOK    = "ok"
	pollNoFix = "no_fix"
	pollError = "error"
)

type LocationFetcher interface {
	GetProviderLocation(ctx context.Context, bookingID models.ID) (*models.Location, error)
}

// Update is one poll result. Exactly one of Location and Err is set.
type Update struct {
	Location *models.Location
	Err      error
	At       time.Time
}

type Poller struct {
	src      LocationFetcher
	interval time.Duration
	logger   *zerolog.Logger
}

func NewPoller(src LocationFetcher, interval time.Duration, logger *zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = models.DefaultTrackingInterval * time.Second
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	l := logger.With().Str("component", "tracking").Logger()
	return &Poller{src: src, interval: interval, logger: &l}
}

// Run polls immediately, hands the result to onUpdate and waits the interval
// before the next poll, until ctx is done. The wait starts after onUpdate
// returns, so a slow backend stretches the period instead of stacking polls.
func (p *Poller) Run(ctx context.Context, bookingID models.ID, onUpdate func(Update)) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		u := p.poll(ctx, bookingID)
		if err := ctx.Err(); err != nil {
			return err
		}
		onUpdate(u)
		timer.Reset(p.interval)
	}
}

func (p *Poller) poll(ctx context.Context, bookingID models.ID) Update {
	loc, err := p.src.GetProviderLocation(ctx, bookingID)
	u := Update{Location: loc, Err: err, At: time.Now()}
	switch {
	case err != nil:
		metrics.IncPoll(pollError)
		p.logger.Warn().Err(err).Int64("booking_id", int64(bookingID)).Msg("location poll failed")
	case loc == nil || !loc.HasFix():
		metrics.IncPoll(pollNoFix)
	default:
		metrics.IncPoll(pollOK)
	}
	return u
}
