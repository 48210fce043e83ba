package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"profix/internal/models"
)

// envelope is a decoded top-level JSON object. Keys are looked up lazily so
// that each route can name exactly the fields it depends on.
type envelope map[string]json.RawMessage

// successEnvelope decodes the backend's {success, message, ...} convention.
// A reply without a boolean success is malformed. A success reply missing
// one of the required keys is malformed too, rather than silently empty.
func successEnvelope(required ...string) responseDecoder {
	return func(route string, data []byte) (envelope, error) {
		env, err := decodeObject(route, data)
		if err != nil {
			return nil, err
		}
		raw, ok := env["success"]
		if !ok {
			return nil, parseError(route, errors.New("response has no success field"))
		}
		var success bool
		if err := json.Unmarshal(raw, &success); err != nil {
			return nil, parseError(route, fmt.Errorf("success is not a boolean: %s", raw))
		}
		if !success {
			return nil, businessError(route, env.message())
		}
		if err := env.require(route, required...); err != nil {
			return nil, err
		}
		return env, nil
	}
}

// keyedEnvelope is for services that do not use the success flag and only
// promise a set of keys.
func keyedEnvelope(required ...string) responseDecoder {
	return func(route string, data []byte) (envelope, error) {
		env, err := decodeObject(route, data)
		if err != nil {
			return nil, err
		}
		if err := env.require(route, required...); err != nil {
			return nil, err
		}
		return env, nil
	}
}

func decodeObject(route string, data []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, parseError(route, fmt.Errorf("decode response: %w", err))
	}
	if env == nil {
		return nil, parseError(route, errors.New("empty response"))
	}
	return env, nil
}

func (e envelope) has(key string) bool {
	raw, ok := e[key]
	return ok && string(raw) != "null"
}

func (e envelope) require(route string, keys ...string) error {
	for _, key := range keys {
		if !e.has(key) {
			return parseError(route, fmt.Errorf("response has no %q field", key))
		}
	}
	return nil
}

// decode unmarshals key into out. An absent key leaves out untouched.
func (e envelope) decode(route, key string, out any) error {
	if !e.has(key) {
		return nil
	}
	if err := json.Unmarshal(e[key], out); err != nil {
		return parseError(route, fmt.Errorf("decode %q: %w", key, err))
	}
	return nil
}

// message returns the message field verbatim. Non-string messages are
// passed through as their raw JSON text.
func (e envelope) message() string {
	raw, ok := e["message"]
	if !ok || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw)
	}
	return s
}

// whole decodes the entire envelope into out, for routes whose payload is
// flat alongside success.
func (e envelope) whole(route string, out any) error {
	data, err := json.Marshal(e)
	if err != nil {
		return parseError(route, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return parseError(route, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

type checker interface {
	Check() error
}

// checkRecords rejects a decoded payload whose records lack their identity
// fields. Payload types without a Check method pass through.
func checkRecords(route, key string, v any) error {
	var err error
	switch p := v.(type) {
	case checker:
		err = p.Check()
	case []models.Provider:
		err = checkEach(p)
	case []models.Booking:
		err = checkEach(p)
	case []models.PortfolioImage:
		err = checkEach(p)
	case []models.ProviderAvailability:
		err = checkEach(p)
	}
	if err != nil {
		return parseError(route, fmt.Errorf("decode %q: %w", key, err))
	}
	return nil
}

func checkEach[T checker](items []T) error {
	for i, item := range items {
		if err := item.Check(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}
