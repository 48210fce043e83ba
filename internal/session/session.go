// Package session holds who is logged in on this device. A Session is created
// after a successful login, read by every operation that needs the caller's
// id and removed on logout or account deletion.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"profix/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrNoSession = errors.New("not logged in")
	ErrWrongRole = errors.New("session has the wrong role")
)

type Session struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	UserID    models.ID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists at most one session. Load returns (nil, nil) when empty.
type Store interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

type Manager struct {
	store  Store
	ttl    time.Duration
	logger *zerolog.Logger
	now    func() time.Time
}

// NewManager returns a Manager over store. A ttl of 0 never expires sessions.
func NewManager(store Store, ttl time.Duration, logger *zerolog.Logger) *Manager {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	l := logger.With().Str("component", "session").Logger()
	return &Manager{store: store, ttl: ttl, logger: &l, now: time.Now}
}

// Start records a login. record is the account returned by the login call:
// *models.User, *models.Provider or *models.Admin, matching role.
func (m *Manager) Start(ctx context.Context, role string, record any) (*Session, error) {
	s := &Session{ID: uuid.NewString(), Role: role, CreatedAt: m.now().UTC()}

	switch r := record.(type) {
	case *models.User:
		if role != models.RoleUser {
			return nil, fmt.Errorf("%w: user record for role %q", ErrWrongRole, role)
		}
		s.UserID, s.Name, s.Email = r.ID, r.FullName, r.Email
	case *models.Provider:
		if role != models.RoleProvider {
			return nil, fmt.Errorf("%w: provider record for role %q", ErrWrongRole, role)
		}
		s.UserID, s.Name, s.Email = r.ID, r.FullName, r.Email
	case *models.Admin:
		if role != models.RoleAdmin {
			return nil, fmt.Errorf("%w: admin record for role %q", ErrWrongRole, role)
		}
		s.UserID, s.Name, s.Email = r.ID, r.FullName, r.Email
	default:
		return nil, fmt.Errorf("unsupported login record %T", record)
	}
	if s.UserID == 0 {
		return nil, errors.New("login record has no id")
	}

	if err := m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	m.logger.Info().Str("role", s.Role).Int64("account_id", int64(s.UserID)).Msg("session started")
	return s, nil
}

// Current returns the active session or ErrNoSession. Expired sessions are
// cleared on read.
func (m *Manager) Current(ctx context.Context) (*Session, error) {
	s, err := m.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if s == nil {
		return nil, ErrNoSession
	}
	if m.ttl > 0 && m.now().Sub(s.CreatedAt) > m.ttl {
		m.logger.Info().Str("session_id", s.ID).Msg("session expired")
		if err := m.store.Clear(ctx); err != nil {
			m.logger.Warn().Err(err).Msg("failed to clear expired session")
		}
		return nil, ErrNoSession
	}
	return s, nil
}

// Require returns the active session if its role is one of roles.
func (m *Manager) Require(ctx context.Context, roles ...string) (*Session, error) {
	s, err := m.Current(ctx)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return s, nil
	}
	for _, r := range roles {
		if s.Role == r {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: logged in as %s", ErrWrongRole, s.Role)
}

// End removes the session. Ending without a session is not an error.
func (m *Manager) End(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.logger.Info().Msg("session ended")
	return nil
}
