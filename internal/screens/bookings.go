package screens

import (
	"context"
	"fmt"
	"sort"

	"profix/internal/models"
)

type Tab int

const (
	TabAll Tab = iota
	TabPending
	TabActive
	TabCompleted
)

func (t Tab) String() string {
	switch t {
	case TabPending:
		return "pending"
	case TabActive:
		return "active"
	case TabCompleted:
		return "completed"
	default:
		return "all"
	}
}

// ParseTab accepts the tab names used on the command line.
func ParseTab(s string) (Tab, error) {
	for _, t := range []Tab{TabAll, TabPending, TabActive, TabCompleted} {
		if t.String() == s {
			return t, nil
		}
	}
	return TabAll, fmt.Errorf("unknown tab %q", s)
}

// FilterBookings applies a bookings tab. Active covers accepted and
// in-progress jobs, plus pending ones when the pending tab is not shown
// separately (the customer's list).
func FilterBookings(list []models.Booking, tab Tab, pendingIsActive bool) []models.Booking {
	var out []models.Booking
	for _, b := range list {
		keep := false
		switch tab {
		case TabAll:
			keep = true
		case TabPending:
			keep = b.Status == models.StatusPending
		case TabActive:
			keep = b.Status == models.StatusAccepted || b.Status == models.StatusInProgress ||
				(pendingIsActive && b.Status == models.StatusPending)
		case TabCompleted:
			keep = b.Status == models.StatusCompleted
		}
		if keep {
			out = append(out, b)
		}
	}
	return out
}

type UserBookingsBackend interface {
	GetUserBookings(ctx context.Context, userID models.ID) ([]models.Booking, error)
}

// UserBookings is the customer's "My Bookings" list.
type UserBookings struct {
	status
	backend  UserBookingsBackend
	userID   models.ID
	bookings []models.Booking
}

func NewUserBookings(backend UserBookingsBackend, userID models.ID) *UserBookings {
	return &UserBookings{backend: backend, userID: userID}
}

func (u *UserBookings) Load(ctx context.Context) error {
	u.begin()
	defer u.end()
	list, err := u.backend.GetUserBookings(ctx, u.userID)
	if err != nil {
		u.message = failure(err, "Failed to load bookings")
		return err
	}
	u.bookings = list
	return nil
}

// Tab returns the bookings under tab (all, active or completed).
func (u *UserBookings) Tab(tab Tab) []models.Booking {
	return FilterBookings(u.bookings, tab, true)
}

// CanRate reports whether the booking offers the rating action.
func CanRate(b models.Booking) bool { return b.Status == models.StatusCompleted }

// CanTrack reports whether the customer can open live tracking.
func CanTrack(b models.Booking) bool {
	return b.Status == models.StatusAccepted || b.Status == models.StatusInProgress
}

type ProviderBookingsBackend interface {
	GetProviderBookings(ctx context.Context, providerID models.ID) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, req models.UpdateBookingStatusRequest) (string, error)
}

// ProviderBookings is the provider's job queue.
type ProviderBookings struct {
	status
	backend    ProviderBookingsBackend
	providerID models.ID
	bookings   []models.Booking
}

func NewProviderBookings(backend ProviderBookingsBackend, providerID models.ID) *ProviderBookings {
	return &ProviderBookings{backend: backend, providerID: providerID}
}

func (p *ProviderBookings) Load(ctx context.Context) error {
	p.begin()
	defer p.end()
	list, err := p.backend.GetProviderBookings(ctx, p.providerID)
	if err != nil {
		p.message = failure(err, "Failed to load bookings")
		return err
	}
	p.bookings = list
	return nil
}

// Tab returns the bookings under tab; highestFirst sorts by amount.
func (p *ProviderBookings) Tab(tab Tab, highestFirst bool) []models.Booking {
	out := FilterBookings(p.bookings, tab, false)
	if highestFirst {
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalAmount > out[j].TotalAmount })
	}
	return out
}

func (p *ProviderBookings) Accept(ctx context.Context, bookingID models.ID) error {
	return p.SetStatus(ctx, bookingID, models.StatusAccepted)
}

func (p *ProviderBookings) Reject(ctx context.Context, bookingID models.ID) error {
	return p.SetStatus(ctx, bookingID, models.StatusCancelled)
}

func (p *ProviderBookings) Start(ctx context.Context, bookingID models.ID) error {
	return p.SetStatus(ctx, bookingID, models.StatusInProgress)
}

func (p *ProviderBookings) Complete(ctx context.Context, bookingID models.ID) error {
	return p.SetStatus(ctx, bookingID, models.StatusCompleted)
}

// SetStatus sends status as given and reloads the list on success. Whether
// the transition is allowed is for the backend to decide.
func (p *ProviderBookings) SetStatus(ctx context.Context, bookingID models.ID, next string) error {
	p.begin()
	pid := p.providerID
	msg, err := p.backend.UpdateBookingStatus(ctx, models.UpdateBookingStatusRequest{
		BookingID:  bookingID,
		Status:     next,
		ProviderID: &pid,
	})
	p.end()
	if err != nil {
		p.message = failure(err, "Failed to update booking")
		return err
	}
	// The update went through; a failed reload only leaves its message.
	if err := p.Load(ctx); err != nil {
		return nil
	}
	p.message = msg
	return nil
}
