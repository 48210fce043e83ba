package tracking

import (
	"context"
	"errors"
	"time"

	"profix/internal/api"
	"profix/internal/models"

	"github.com/rs/zerolog"
)

// Messages shown on the provider's booking card.
const (
	MsgShared   = "Location shared"
	MsgNoSignal = "GPS signal weak. Move outside."
)

// ErrNoFix is returned by a LocationSource that has no position yet.
var ErrNoFix = errors.New("no position fix")

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

type LocationSource interface {
	Current(ctx context.Context) (Coordinate, error)
}

type LocationPusher interface {
	UpdateProviderLocation(ctx context.Context, req models.UpdateLocationRequest) (string, error)
}

// Sharer pushes the provider's position for one booking.
type Sharer struct {
	dst      LocationPusher
	interval time.Duration
	logger   *zerolog.Logger
}

func NewSharer(dst LocationPusher, interval time.Duration, logger *zerolog.Logger) *Sharer {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	l := logger.With().Str("component", "sharing").Logger()
	return &Sharer{dst: dst, interval: interval, logger: &l}
}

// ShareOnce reads one position and pushes it. The returned text is what the
// provider sees; err is non-nil when nothing was shared.
func (s *Sharer) ShareOnce(ctx context.Context, providerID, bookingID models.ID, source LocationSource) (Coordinate, string, error) {
	c, err := source.Current(ctx)
	if err != nil {
		if errors.Is(err, ErrNoFix) {
			return c, MsgNoSignal, err
		}
		return c, "Loc Error: " + err.Error(), err
	}
	if _, err := s.push(ctx, providerID, bookingID, c, true); err != nil {
		return c, api.UserMessage(err), err
	}
	return c, MsgShared, nil
}

func (s *Sharer) push(ctx context.Context, providerID, bookingID models.ID, c Coordinate, sharing bool) (string, error) {
	req := models.UpdateLocationRequest{
		ProviderID: providerID,
		Latitude:   c.Latitude,
		Longitude:  c.Longitude,
		IsSharing:  sharing,
	}
	if bookingID != 0 {
		req.BookingID = &bookingID
	}
	return s.dst.UpdateProviderLocation(ctx, req)
}

// Run shares every interval until ctx is done, then sends a final update
// with is_sharing=false at the last known position. Individual failures are
// logged and retried on the next tick.
func (s *Sharer) Run(ctx context.Context, providerID, bookingID models.ID, source LocationSource) error {
	var (
		last    Coordinate
		haveFix bool
	)
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			if haveFix {
				s.stop(ctx, providerID, bookingID, last)
			}
			return ctx.Err()
		case <-timer.C:
		}

		c, msg, err := s.ShareOnce(ctx, providerID, bookingID, source)
		if err != nil {
			if ctx.Err() == nil {
				s.logger.Warn().Err(err).Str("message", msg).Int64("booking_id", int64(bookingID)).Msg("share failed")
			}
		} else {
			last, haveFix = c, true
			s.logger.Debug().Int64("booking_id", int64(bookingID)).Msg("location shared")
		}
		timer.Reset(s.interval)
	}
}

func (s *Sharer) stop(ctx context.Context, providerID, bookingID models.ID, last Coordinate) {
	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if _, err := s.push(stopCtx, providerID, bookingID, last, false); err != nil {
		s.logger.Warn().Err(err).Msg("failed to stop sharing")
	}
}
