package screens

import (
	"context"

	"profix/internal/models"
	"profix/internal/tracking"
)

const MsgLocationFailed = "Failed to get location"

// Tracking is the customer's live map of the provider for one booking.
type Tracking struct {
	status
	poller    *tracking.Poller
	bookingID models.ID
	last      *models.Location
	fix       *models.Location
}

func NewTracking(poller *tracking.Poller, bookingID models.ID) *Tracking {
	return &Tracking{poller: poller, bookingID: bookingID}
}

// Latest is the last successful poll.
func (t *Tracking) Latest() *models.Location { return t.last }

// LastFix is the last poll that carried coordinates. The marker stays there
// while later polls report no position.
func (t *Tracking) LastFix() *models.Location { return t.fix }

// Apply folds one poll result into the view.
func (t *Tracking) Apply(u tracking.Update) {
	if u.Err != nil {
		t.message = failure(u.Err, MsgLocationFailed)
		return
	}
	t.message = ""
	if u.Location == nil {
		return
	}
	t.last = u.Location
	if u.Location.HasFix() {
		t.fix = u.Location
	} else if u.Location.Message != "" {
		t.message = u.Location.Message
	}
}

// Run polls until ctx ends, calling onChange after each applied update.
func (t *Tracking) Run(ctx context.Context, onChange func(*Tracking)) error {
	return t.poller.Run(ctx, t.bookingID, func(u tracking.Update) {
		t.Apply(u)
		if onChange != nil {
			onChange(t)
		}
	})
}

// Share is the provider's "share location" button on an active booking.
type Share struct {
	status
	sharer     *tracking.Sharer
	providerID models.ID
	bookingID  models.ID
}

func NewShare(sharer *tracking.Sharer, providerID, bookingID models.ID) *Share {
	return &Share{sharer: sharer, providerID: providerID, bookingID: bookingID}
}

func (s *Share) Once(ctx context.Context, source tracking.LocationSource) error {
	s.begin()
	defer s.end()
	_, msg, err := s.sharer.ShareOnce(ctx, s.providerID, s.bookingID, source)
	s.message = msg
	return err
}
