package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"profix/internal/models"
	"profix/internal/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDates(t *testing.T) {
	got, err := parseDates("2026-03-02, 2026-03-05,,")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 5, got[1].Day())

	_, err = parseDates("2026-03-02,03/05")
	assert.Error(t, err)

	got, err = parseDates("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseID(t *testing.T) {
	id, err := parseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, models.ID(42), id)

	for _, bad := range []string{"", "0", "-3", "abc"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestScreenError(t *testing.T) {
	cause := errors.New("raw")
	assert.NoError(t, screenError("shown", nil))
	assert.Equal(t, cause, screenError("", cause))
	assert.EqualError(t, screenError("Please select booking date", cause), "Please select booking date")
}

func TestFixedSource(t *testing.T) {
	_, err := fixedSource{}.Current(context.Background())
	assert.ErrorIs(t, err, tracking.ErrNoFix)

	c, err := fixedSource{c: tracking.Coordinate{Latitude: 18.5, Longitude: 73.8}, set: true}.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 18.5, c.Latitude)
}

func TestUsageListsEveryCommand(t *testing.T) {
	var buf bytes.Buffer
	usage(&buf)
	for name := range commands {
		assert.Contains(t, buf.String(), name)
	}
}

func TestUnknownCommand(t *testing.T) {
	err := run([]string{"frobnicate"})
	assert.EqualError(t, err, `unknown command "frobnicate"`)
}
