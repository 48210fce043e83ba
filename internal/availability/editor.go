package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"profix/internal/api"
	"profix/internal/logging"
	"profix/internal/models"

	"github.com/rs/zerolog"
)

// Writer is the backend write side of the editor.
type Writer interface {
	UpdateProviderAvailability(ctx context.Context, req models.UpdateAvailabilityRequest) (string, error)
	CopyAvailability(ctx context.Context, req models.CopyAvailabilityRequest) (string, error)
}

const (
	MsgSaved       = "Availability updated!"
	MsgCopied      = "Schedule copied successfully!"
	MsgLoadFailed  = "Error loading schedule"
	MsgNoSelection = "Select a date to set availability"
)

var (
	ErrNoSelection   = errors.New("no date selected")
	ErrOutsideMonth  = errors.New("date is not in the displayed month")
	ErrNoCopyTargets = errors.New("no target dates to copy to")
	ErrInvalidStatus = errors.New("status must be available or unavailable")
)

// Buffer is the edit form for one date.
type Buffer struct {
	Date      time.Time
	Status    string
	StartTime string
	EndTime   string
}

// Editor is the provider's month calendar. The displayed month always
// reflects the last successful fetch; failures leave it and the edit buffer
// untouched and only set the message.
type Editor struct {
	repo       *Repository
	writer     Writer
	providerID models.ID
	logger     *zerolog.Logger

	year     int
	month    time.Month
	data     *Month
	selected *Buffer
	message  string
}

// NewEditor starts on the month containing start. Call Load to fetch it.
func NewEditor(repo *Repository, w Writer, providerID models.ID, start time.Time, logger *zerolog.Logger) *Editor {
	return &Editor{
		repo:       repo,
		writer:     w,
		providerID: providerID,
		logger:     logging.Component(logger, "schedule"),
		year:       start.Year(),
		month:      start.Month(),
	}
}

// Shown returns the displayed year and month.
func (e *Editor) Shown() (int, time.Month) { return e.year, e.month }

// Data returns the displayed month, or nil before the first successful load.
func (e *Editor) Data() *Month { return e.data }

// Selected returns a copy of the edit buffer, or nil.
func (e *Editor) Selected() *Buffer {
	if e.selected == nil {
		return nil
	}
	b := *e.selected
	return &b
}

func (e *Editor) Message() string { return e.message }

func (e *Editor) DismissMessage() { e.message = "" }

// Load re-fetches the displayed month.
func (e *Editor) Load(ctx context.Context) error {
	return e.show(ctx, e.year, e.month)
}

func (e *Editor) NextMonth(ctx context.Context) error {
	next := Date(e.year, e.month, 1).AddDate(0, 1, 0)
	return e.show(ctx, next.Year(), next.Month())
}

func (e *Editor) PrevMonth(ctx context.Context) error {
	prev := Date(e.year, e.month, 1).AddDate(0, -1, 0)
	return e.show(ctx, prev.Year(), prev.Month())
}

// show fetches year/month and only switches to it on success.
func (e *Editor) show(ctx context.Context, year int, month time.Month) error {
	m, err := e.repo.Month(ctx, e.providerID, year, month)
	if err != nil {
		e.message = MsgLoadFailed
		e.logger.Warn().Err(err).
			Int64("provider_id", int64(e.providerID)).
			Str("month", fmt.Sprintf("%04d-%02d", year, month)).
			Msg("load schedule failed")
		return err
	}
	if year != e.year || month != e.month {
		e.selected = nil
	}
	e.year, e.month, e.data = year, month, m
	return nil
}

// Select loads date's record into the edit buffer, or the defaults
// (available, 09:00 to 17:00) when the date has none.
func (e *Editor) Select(date time.Time) (*Buffer, error) {
	date = Date(date.Year(), date.Month(), date.Day())
	if date.Year() != e.year || date.Month() != e.month {
		return nil, ErrOutsideMonth
	}

	b := &Buffer{
		Date:      date,
		Status:    models.AvailabilityAvailable,
		StartTime: models.DefaultStartTime,
		EndTime:   models.DefaultEndTime,
	}
	if rec, ok := e.data.Get(date); ok {
		b.Status = rec.Status
		b.StartTime = rec.StartTime
		b.EndTime = rec.EndTime
	}
	e.selected = b
	return e.Selected(), nil
}

func (e *Editor) SetStatus(status string) error {
	if e.selected == nil {
		return ErrNoSelection
	}
	if status != models.AvailabilityAvailable && status != models.AvailabilityUnavailable {
		return ErrInvalidStatus
	}
	e.selected.Status = status
	return nil
}

// SetHours sets the working window. Only the format is checked; window
// rules belong to the backend.
func (e *Editor) SetHours(start, end string) error {
	if e.selected == nil {
		return ErrNoSelection
	}
	s, err := ParseClock(start)
	if err != nil {
		return err
	}
	en, err := ParseClock(end)
	if err != nil {
		return err
	}
	e.selected.StartTime, e.selected.EndTime = s, en
	return nil
}

// Save sends the selected date's full record and reloads the month on
// success. A failed save keeps the buffer so the user can retry. A failed
// reload after a successful save only sets the message.
func (e *Editor) Save(ctx context.Context) error {
	if e.selected == nil {
		e.message = MsgNoSelection
		return ErrNoSelection
	}
	b := e.selected
	_, err := e.writer.UpdateProviderAvailability(ctx, models.UpdateAvailabilityRequest{
		ProviderID: e.providerID,
		Date:       FormatDate(b.Date),
		Status:     b.Status,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
	})
	if err != nil {
		e.message = api.UserMessage(err)
		return err
	}
	e.message = MsgSaved
	e.reload(ctx)
	return nil
}

// CopyTargets computes targets in the displayed month for the selected date.
func (e *Editor) CopyTargets(mode CopyMode, explicit ...time.Time) ([]time.Time, error) {
	if e.selected == nil {
		return nil, ErrNoSelection
	}
	return CopyTargets(e.year, e.month, e.selected.Date, mode, explicit), nil
}

// Copy applies the selected date's stored settings to targets in one call,
// then reloads the month.
func (e *Editor) Copy(ctx context.Context, targets []time.Time) error {
	if e.selected == nil {
		e.message = MsgNoSelection
		return ErrNoSelection
	}
	source := e.selected.Date
	targets = CopyTargets(e.year, e.month, source, ModeExplicit, targets)
	if len(targets) == 0 {
		return ErrNoCopyTargets
	}

	dates := make([]string, len(targets))
	for i, t := range targets {
		dates[i] = FormatDate(t)
	}
	_, err := e.writer.CopyAvailability(ctx, models.CopyAvailabilityRequest{
		ProviderID:  e.providerID,
		SourceDate:  FormatDate(source),
		TargetDates: dates,
	})
	if err != nil {
		e.message = api.UserMessage(err)
		return err
	}
	e.message = MsgCopied
	e.reload(ctx)
	return nil
}

func (e *Editor) reload(ctx context.Context) {
	msg := e.message
	if err := e.Load(ctx); err != nil {
		return
	}
	e.message = msg
}
