package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayHours_Contains(t *testing.T) {
	h := DayHours{StartHour: 9, EndHour: 17}
	assert.False(t, h.Contains(8))
	assert.True(t, h.Contains(9))
	assert.True(t, h.Contains(16))
	assert.False(t, h.Contains(17))

	closed := DayHours{Closed: true, StartHour: 9, EndHour: 17}
	assert.False(t, closed.Contains(12))
}

func TestValidHours(t *testing.T) {
	assert.True(t, ValidHours(9, 17))
	assert.True(t, ValidHours(0, 23))
	assert.False(t, ValidHours(17, 17))
	assert.False(t, ValidHours(18, 9))
	assert.False(t, ValidHours(-1, 9))
	assert.False(t, ValidHours(9, 24))
}

func TestFallbackWeek(t *testing.T) {
	w := FallbackWeek()
	assert.False(t, w.Configured)
	for wd := 0; wd < 7; wd++ {
		assert.Equal(t, DayHours{StartHour: 10, EndHour: 19}, w.For(wd))
	}
	assert.Equal(t, w.For(0), w.For(7))
}
