package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The backend is a PHP/PDO service: numeric columns often arrive as JSON
// strings ("12", "450.00") and boolean columns as 0/1. The types below accept
// both shapes but still reject anything that is not a number.

// ID is an integer identifier that tolerates quoted numbers.
type ID int64

func (i *ID) UnmarshalJSON(data []byte) error {
	v, err := parseNumber(data)
	if err != nil {
		return err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q", v)
	}
	*i = ID(n)
	return nil
}

// Num is a float that tolerates quoted numbers.
type Num float64

func (n *Num) UnmarshalJSON(data []byte) error {
	v, err := parseNumber(data)
	if err != nil {
		return err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", v)
	}
	*n = Num(f)
	return nil
}

// Flag is a boolean column that the backend may send as true/false, 0/1 or "0"/"1".
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	switch string(raw) {
	case "true":
		*f = true
		return nil
	case "false", "null":
		*f = false
		return nil
	}
	v, err := parseNumber(raw)
	if err != nil {
		return err
	}
	switch v {
	case "1":
		*f = true
	case "0":
		*f = false
	default:
		return fmt.Errorf("invalid flag %q", v)
	}
	return nil
}

// MarshalJSON writes 1/0, the shape the backend expects for flag columns.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func parseNumber(data []byte) (string, error) {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || string(raw) == "null" {
		return "0", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return "0", nil
		}
		return s, nil
	}
	if raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9') {
		return string(raw), nil
	}
	return "", fmt.Errorf("expected number, got %s", raw)
}
