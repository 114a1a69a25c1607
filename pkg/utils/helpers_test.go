package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	cases := map[string]time.Time{
		"2026-05-01T10:30:00Z":      time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC),
		"2026-05-01T10:30:00":       time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC),
		"2026-05-01":                time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		"  2026-05-01T10:30:00Z  ":  time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC),
		"2026-05-01T10:30:00+02:00": time.Date(2026, 5, 1, 10, 30, 0, 0, time.FixedZone("", 2*3600)),
	}
	for in, want := range cases {
		got, err := ParseTimestamp(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	for _, in := range []string{"", "yesterday", "01/05/2026", "2026-13-40"} {
		_, err := ParseTimestamp(in)
		assert.Error(t, err, in)
	}
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, 42, ParseValue("42"))
	assert.Equal(t, 3.14, ParseValue(" 3.14 "))
	assert.Equal(t, "hello", ParseValue("hello"))
	assert.Equal(t, "", ParseValue("  "))
}

func TestNumeric(t *testing.T) {
	assert.True(t, IsNumeric(10))
	assert.True(t, IsNumeric(2.5))
	assert.False(t, IsNumeric("10"))
	assert.False(t, IsNumeric(nil))

	assert.Equal(t, 10.0, Numeric(10))
	assert.Equal(t, 10.0, Numeric(int64(10)))
	assert.Equal(t, 2.5, Numeric(float32(2.5)))
	assert.Equal(t, 0.0, Numeric("nope"))
}
