package screens

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"profix/internal/api"
	"profix/internal/availability"
	"profix/internal/models"
	"profix/internal/session"
	"profix/internal/validation"
)

const (
	MsgSelectDate           = "Please select booking date"
	MsgSelectTime           = "Please select booking time"
	MsgEnterAddress         = "Please enter service address"
	MsgBookingFailed        = "Booking failed"
	MsgAvailabilityNetError = "Network error checking availability"

	MinBookingHours = 1
	MaxBookingHours = 12
)

var ErrDateUnavailable = errors.New("provider unavailable on date")

// DateChecker answers "is this date blocked" for a provider.
type DateChecker interface {
	IsUnavailable(ctx context.Context, providerID models.ID, date time.Time) (bool, error)
}

type BookingCreator interface {
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.BookingCreated, error)
}

// BookingConfirm is the booking form for one provider.
type BookingConfirm struct {
	status
	dates    DateChecker
	backend  BookingCreator
	user     *session.Session
	provider models.Provider

	form    validation.BookingForm
	created *models.BookingCreated
}

func NewBookingConfirm(dates DateChecker, backend BookingCreator, user *session.Session, provider models.Provider) *BookingConfirm {
	return &BookingConfirm{
		dates:    dates,
		backend:  backend,
		user:     user,
		provider: provider,
		form:     validation.BookingForm{EstimatedHours: MinBookingHours},
	}
}

func (b *BookingConfirm) Form() validation.BookingForm { return b.form }

// PickDate checks the provider's calendar for date. A blocked date is
// refused and the field cleared. Any reply from the backend that is not a
// usable calendar (success:false or a non-2xx status) does not block
// booking; a transport failure leaves the date unset.
func (b *BookingConfirm) PickDate(ctx context.Context, date time.Time) error {
	b.begin()
	defer b.end()

	ds := availability.FormatDate(date)
	blocked, err := b.dates.IsUnavailable(ctx, b.provider.ID, date)
	switch {
	case err != nil && api.Responded(err):
		b.form.BookingDate = ds
		return nil
	case err != nil:
		b.message = MsgAvailabilityNetError
		return err
	case blocked:
		b.form.BookingDate = ""
		b.message = fmt.Sprintf("Provider is unavailable on %s. Please choose another date.", ds)
		return ErrDateUnavailable
	}
	b.form.BookingDate = ds
	return nil
}

func (b *BookingConfirm) SetTime(clock string) error {
	v, err := availability.ParseClock(clock)
	if err != nil {
		return err
	}
	b.form.BookingTime = v
	return nil
}

func (b *BookingConfirm) SetAddress(address, city, pincode string) {
	b.form.Address = strings.TrimSpace(address)
	b.form.City = strings.TrimSpace(city)
	b.form.Pincode = validation.DigitsOnly(pincode, 6)
}

func (b *BookingConfirm) SetDescription(d string) { b.form.Description = d }

// SetHours clamps to the selectable range.
func (b *BookingConfirm) SetHours(h int) {
	b.form.EstimatedHours = max(MinBookingHours, min(h, MaxBookingHours))
}

// Total is the estimate shown before confirming.
func (b *BookingConfirm) Total() float64 {
	return float64(b.provider.HourlyRate) * float64(b.form.EstimatedHours)
}

func (b *BookingConfirm) Created() *models.BookingCreated { return b.created }

// Submit creates the booking.
func (b *BookingConfirm) Submit(ctx context.Context) (*models.BookingCreated, error) {
	switch {
	case b.form.BookingDate == "":
		b.message = MsgSelectDate
		return nil, ErrInvalidInput
	case b.form.BookingTime == "":
		b.message = MsgSelectTime
		return nil, ErrInvalidInput
	case b.form.Address == "":
		b.message = MsgEnterAddress
		return nil, ErrInvalidInput
	}
	if err := validation.Struct(b.form); err != nil {
		b.message = err.Error()
		return nil, ErrInvalidInput
	}

	b.begin()
	defer b.end()
	created, err := b.backend.CreateBooking(ctx, models.CreateBookingRequest{
		UserID:         b.user.UserID,
		ProviderID:     b.provider.ID,
		BookingDate:    b.form.BookingDate,
		BookingTime:    b.form.BookingTime,
		Address:        b.form.Address,
		City:           b.form.City,
		Pincode:        b.form.Pincode,
		Description:    b.form.Description,
		EstimatedHours: b.form.EstimatedHours,
	})
	if err != nil {
		b.message = failure(err, MsgBookingFailed)
		return nil, err
	}
	b.created = created
	return created, nil
}
