package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapitalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ana", "Ana"},
		{"Ana", "Ana"},
		{"  ana  ", "Ana"},
		{"ana maria", "Ana maria"},
		{"élodie", "Élodie"},
		{"a", "A"},
		{"", ""},
		{"   ", ""},
		{"123 main st", "123 main st"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CapitalizeName(tt.in), "CapitalizeName(%q)", tt.in)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2026-09-01T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, 15, got.Hour())

	_, err = ParseDate("01/09/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2026-09-01", FormatDate(d))
	assert.Equal(t, "2026-09-01T15:04:05Z", FormatTimestamp(d))
}
