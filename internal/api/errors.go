package api

import (
	"errors"
	"fmt"
)

// Kind classifies an adapter failure the way the user sees it.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNetwork covers transport failures and non-2xx responses.
	KindNetwork
	// KindBusiness is a well-formed success:false reply.
	KindBusiness
	// KindParse is a reply that could not be decoded or lacks a required field.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindBusiness:
		return "business"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

var (
	ErrNetwork  = errors.New("network error")
	ErrBusiness = errors.New("business error")
	ErrParse    = errors.New("parse error")
)

// Error is returned by every adapter call.
type Error struct {
	Kind    Kind
	Route   string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBusiness:
		return fmt.Sprintf("%s: %s", e.Route, e.Message)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Route, e.Kind, e.Err)
		}
		return fmt.Sprintf("%s: %s: %s", e.Route, e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNetwork) and friends match on kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrBusiness:
		return e.Kind == KindBusiness
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

func networkError(route string, status int, err error) *Error {
	return &Error{Kind: KindNetwork, Route: route, Status: status, Err: err}
}

func parseError(route string, err error) *Error {
	return &Error{Kind: KindParse, Route: route, Err: err}
}

func businessError(route, message string) *Error {
	return &Error{Kind: KindBusiness, Route: route, Message: message}
}

// KindOf returns the kind of an adapter error, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// BusinessMessage returns the backend's message for a success:false reply.
func BusinessMessage(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindBusiness {
		return e.Message, true
	}
	return "", false
}

// Responded reports whether the backend answered the call at all: a
// success:false body or an HTTP status outside 2xx. Transport and parse
// failures are not answers.
func Responded(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == KindBusiness || (e.Kind == KindNetwork && e.Status != 0)
}

// UserMessage renders err the way a screen shows it: backend messages
// verbatim, everything else as "Network error: <cause>".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	switch e.Kind {
	case KindBusiness:
		if e.Message == "" {
			return "Request failed"
		}
		return e.Message
	default:
		cause := e.Message
		if e.Err != nil {
			cause = e.Err.Error()
		}
		return "Network error: " + cause
	}
}
