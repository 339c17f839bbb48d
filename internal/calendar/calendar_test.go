package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0 min"},
		{-10, "0 min"},
		{30, "30 min"},
		{45, "45 min"},
		{60, "1h"},
		{90, "1h 30m"},
		{120, "2h"},
		{150, "2h 30m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.minutes))
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{0, "R$ 0"},
		{80, "R$ 80"},
		{250, "R$ 250"},
		{1250, "R$ 1.250"},
		{1234567, "R$ 1.234.567"},
		{-90, "-R$ 90"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.value))
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)
	c := time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
