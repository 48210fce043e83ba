package screens

import (
	"context"
	"fmt"
	"strings"

	"profix/internal/models"
	"profix/internal/session"
	"profix/internal/validation"
)

const (
	MsgFillAllFields = "Please fill all fields"
	MsgLoginFailed   = "Login failed"
)

type LoginBackend interface {
	LoginUser(ctx context.Context, req models.LoginRequest) (*models.User, error)
	LoginProvider(ctx context.Context, req models.LoginRequest) (*models.Provider, error)
	LoginAdmin(ctx context.Context, req models.LoginRequest) (*models.Admin, error)
}

// Login is the login screen for one role.
type Login struct {
	status
	backend  LoginBackend
	sessions *session.Manager
	role     string
}

func NewLogin(backend LoginBackend, sessions *session.Manager, role string) *Login {
	return &Login{backend: backend, sessions: sessions, role: role}
}

// Submit logs in and starts the session. On failure the reason is in Message.
func (l *Login) Submit(ctx context.Context, form validation.LoginForm) (*session.Session, error) {
	form.Email = strings.TrimSpace(form.Email)
	if err := validation.Struct(form); err != nil {
		l.message = MsgFillAllFields
		return nil, ErrInvalidInput
	}

	l.begin()
	defer l.end()

	record, err := l.login(ctx, form.Request())
	if err != nil {
		l.message = failure(err, MsgLoginFailed)
		return nil, err
	}

	s, err := l.sessions.Start(ctx, l.role, record)
	if err != nil {
		l.message = err.Error()
		return nil, err
	}
	return s, nil
}

func (l *Login) login(ctx context.Context, req models.LoginRequest) (any, error) {
	switch l.role {
	case models.RoleUser:
		return l.backend.LoginUser(ctx, req)
	case models.RoleProvider:
		return l.backend.LoginProvider(ctx, req)
	case models.RoleAdmin:
		return l.backend.LoginAdmin(ctx, req)
	}
	return nil, fmt.Errorf("unknown role %q", l.role)
}
