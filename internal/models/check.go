package models

import (
	"errors"
	"fmt"
)

// ErrMissingField marks a returned record without its identifying field.
// ID decodes null and "" as 0, so a zero ID is treated as absent.
var ErrMissingField = errors.New("missing field")

func requireID(id ID) error {
	if id <= 0 {
		return fmt.Errorf("%w %q", ErrMissingField, "id")
	}
	return nil
}

func (u User) Check() error { return requireID(u.ID) }

func (a Admin) Check() error { return requireID(a.ID) }

func (p Provider) Check() error { return requireID(p.ID) }

func (b Booking) Check() error { return requireID(b.ID) }

func (b BookingCreated) Check() error { return requireID(b.ID) }

func (p PortfolioImage) Check() error { return requireID(p.ID) }

// Check requires the date; its format is left to the calendar code.
func (a ProviderAvailability) Check() error {
	if a.Date == "" {
		return fmt.Errorf("%w %q", ErrMissingField, "date")
	}
	return nil
}
