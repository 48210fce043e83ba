package screens

import (
	"context"

	"profix/internal/models"
	"profix/internal/validation"
)

const MsgRegistrationFailed = "Registration failed"

type RegisterBackend interface {
	GetServices(ctx context.Context) ([]models.Service, error)
	RegisterUser(ctx context.Context, req models.UserRegisterRequest) (string, error)
	RegisterProvider(ctx context.Context, req models.ProviderRegisterRequest) (string, error)
}

// Register serves both registration screens. Field errors block the call and
// are shown inline.
type Register struct {
	status
	backend  RegisterBackend
	services []models.Service
	fields   validation.FieldErrors
}

func NewRegister(backend RegisterBackend) *Register {
	return &Register{backend: backend}
}

// LoadServices fills the provider's service picker.
func (r *Register) LoadServices(ctx context.Context) error {
	r.begin()
	defer r.end()
	svcs, err := r.backend.GetServices(ctx)
	if err != nil {
		r.message = failure(err, "Failed to load services")
		return err
	}
	r.services = svcs
	return nil
}

func (r *Register) Services() []models.Service { return r.services }

// FieldError returns the inline message for a form field.
func (r *Register) FieldError(field string) string { return r.fields.Field(field) }

func (r *Register) check(form any) bool {
	r.fields = nil
	if err := validation.Struct(form); err != nil {
		if fe, ok := validation.AsFieldErrors(err); ok {
			r.fields = fe
		} else {
			r.message = err.Error()
		}
		return false
	}
	return true
}

// SubmitUser registers a customer and returns the backend's confirmation.
func (r *Register) SubmitUser(ctx context.Context, form validation.UserRegistration) (string, error) {
	if !r.check(form) {
		return "", ErrInvalidInput
	}
	r.begin()
	defer r.end()
	msg, err := r.backend.RegisterUser(ctx, form.Request())
	if err != nil {
		r.message = failure(err, MsgRegistrationFailed)
		return "", err
	}
	r.message = msg
	return msg, nil
}

// SubmitProvider registers a provider. The account starts unverified.
func (r *Register) SubmitProvider(ctx context.Context, form validation.ProviderRegistration) (string, error) {
	if !r.check(form) {
		return "", ErrInvalidInput
	}
	r.begin()
	defer r.end()
	msg, err := r.backend.RegisterProvider(ctx, form.Request())
	if err != nil {
		r.message = failure(err, MsgRegistrationFailed)
		return "", err
	}
	r.message = msg
	return msg, nil
}
