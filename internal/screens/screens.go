// Package screens holds one controller per app screen. A controller fetches
// what the screen shows, keeps it as local state and turns a user action into
// one backend call. Controllers share nothing but the adapter and the
// session; each is created for one screen visit and then dropped.
package screens

import (
	"errors"

	"profix/internal/api"
)

// ErrInvalidInput is returned when a form fails local checks before any
// call is made. The field messages are in the controller's state.
var ErrInvalidInput = errors.New("invalid input")

// status is the loading flag and dismissible message every screen carries.
type status struct {
	loading bool
	message string
}

func (s *status) Loading() bool   { return s.loading }
func (s *status) Message() string { return s.message }
func (s *status) DismissMessage() { s.message = "" }

func (s *status) begin() {
	s.loading = true
	s.message = ""
}

func (s *status) end() { s.loading = false }

// failure renders err for the user. A success:false reply without a message
// falls back to the screen's own wording.
func failure(err error, fallback string) string {
	if msg, ok := api.BusinessMessage(err); ok && msg == "" {
		return fallback
	}
	return api.UserMessage(err)
}
