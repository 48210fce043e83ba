package session

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// DefaultRecoveryWindow is how long FailoverStore stays on the fallback
// before trying the primary again.
const DefaultRecoveryWindow = time.Minute

// FailoverStore uses primary until it fails, then serves from fallback and
// retries primary once per recovery window.
type FailoverStore struct {
	primary   Store
	fallback  Store
	logger    *zerolog.Logger
	window    time.Duration
	isDown    atomic.Bool
	lastCheck atomic.Int64
	now       func() time.Time
}

func NewFailoverStore(primary, fallback Store, logger *zerolog.Logger) *FailoverStore {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &FailoverStore{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
		window:   DefaultRecoveryWindow,
		now:      time.Now,
	}
}

func (f *FailoverStore) markDown(err error) {
	f.logger.Error().Err(err).Msg("Primary session store failed, falling back")
	f.isDown.Store(true)
	f.lastCheck.Store(f.now().UnixNano())
}

// usePrimary reports whether the next call should go to primary.
func (f *FailoverStore) usePrimary() bool {
	if !f.isDown.Load() {
		return true
	}
	return f.now().Sub(time.Unix(0, f.lastCheck.Load())) > f.window
}

func (f *FailoverStore) recovered() {
	if f.isDown.CompareAndSwap(true, false) {
		f.logger.Info().Msg("Primary session store recovered")
	}
}

func (f *FailoverStore) Load(ctx context.Context) (*Session, error) {
	if f.usePrimary() {
		s, err := f.primary.Load(ctx)
		if err == nil {
			f.recovered()
			return s, nil
		}
		f.markDown(err)
	}
	return f.fallback.Load(ctx)
}

func (f *FailoverStore) Save(ctx context.Context, s *Session) error {
	if f.usePrimary() {
		err := f.primary.Save(ctx, s)
		if err == nil {
			f.recovered()
			return nil
		}
		f.markDown(err)
	}
	return f.fallback.Save(ctx, s)
}

// Clear clears both stores so a session written during an outage does not
// resurface later.
func (f *FailoverStore) Clear(ctx context.Context) error {
	fbErr := f.fallback.Clear(ctx)
	if f.usePrimary() {
		err := f.primary.Clear(ctx)
		if err == nil {
			f.recovered()
			return fbErr
		}
		f.markDown(err)
	}
	return fbErr
}
