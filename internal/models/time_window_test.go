package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeWindow_RejectsEmptyOrInverted(t *testing.T) {
	t.Parallel()

	at := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewTimeWindow(at, at)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewTimeWindow(at.Add(time.Hour), at)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestNewTimeWindow_NormalizesToUTC(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*3600)
	w, err := NewTimeWindow(
		time.Date(2023, 5, 1, 9, 0, 0, 0, tokyo),
		time.Date(2023, 5, 2, 9, 0, 0, 0, tokyo),
	)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), w.Start())
	assert.Equal(t, time.UTC, w.Start().Location())
	assert.Equal(t, time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC), w.End())
}

func TestTimeWindow_Contains(t *testing.T) {
	t.Parallel()

	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC)
	w, err := NewTimeWindow(start, end)
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    time.Time
		expected bool
	}{
		{name: "equal to start is excluded", input: start, expected: false},
		{name: "equal to end is excluded", input: end, expected: false},
		{name: "just after start", input: start.Add(time.Microsecond), expected: true},
		{name: "just before end", input: end.Add(-time.Microsecond), expected: true},
		{name: "before window", input: start.Add(-time.Hour), expected: false},
		{name: "after window", input: end.Add(time.Hour), expected: false},
		{name: "offset time inside window", input: time.Date(2023, 5, 1, 20, 0, 0, 0, time.FixedZone("JST", 9*3600)), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, w.Contains(tt.input))
		})
	}
}

func TestParseWindowBound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "naive timestamp is UTC",
			input:    "2023-05-01T12:30:00",
			expected: time.Date(2023, 5, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			name:     "date only",
			input:    "2023-05-01",
			expected: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "zulu",
			input:    "2023-05-01T12:30:00Z",
			expected: time.Date(2023, 5, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			name:     "positive offset converted to UTC",
			input:    "2023-05-01T09:00:00+09:00",
			expected: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseWindowBound(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "want %s, got %s", tt.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseWindowBound_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseWindowBound("yesterday-ish")
	assert.ErrorIs(t, err, ErrInvalidWindowBound)
}

func TestParseTimeWindow(t *testing.T) {
	t.Parallel()

	w, err := ParseTimeWindow("2023-05-01T00:00:00", "2023-05-02T00:00:00")
	require.NoError(t, err)
	assert.Equal(t, "2023-05-01T00:00:00_2023-05-02T00:00:00", w.String())

	_, err = ParseTimeWindow("2023-05-02T00:00:00", "2023-05-01T00:00:00")
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestTimeWindow_Days(t *testing.T) {
	t.Parallel()

	w, err := NewTimeWindow(
		time.Date(2023, 4, 30, 22, 0, 0, 0, time.UTC),
		time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		time.Date(2023, 4, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC),
	}, w.Days())
}
