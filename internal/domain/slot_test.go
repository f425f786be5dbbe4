package domain

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Friday 16 Oct 2026, 14:10 IST
var fridayAfternoon = time.Date(2026, 10, 16, 14, 10, 0, 0, ReferenceLocation)

func TestGenerateSlots_BucketsPerDay(t *testing.T) {
	for _, days := range []int{1, 7, 14, 30} {
		buckets := slices.Collect(GenerateSlots(fridayAfternoon, FallbackWeek(), days))
		require.Len(t, buckets, days)

		seen := map[string]bool{}
		for i, b := range buckets {
			assert.False(t, seen[b.Date], "date %s repeated", b.Date)
			seen[b.Date] = true
			want := time.Date(2026, 10, 16+i, 0, 0, 0, 0, ReferenceLocation).Format(DateFormat)
			assert.Equal(t, want, b.Date)
		}
	}
}

func TestGenerateSlots_ClampsDays(t *testing.T) {
	assert.Len(t, slices.Collect(GenerateSlots(fridayAfternoon, FallbackWeek(), 0)), 1)
	assert.Len(t, slices.Collect(GenerateSlots(fridayAfternoon, FallbackWeek(), 90)), 30)
}

func TestGenerateSlots_TodayFilteredFromRoundedNow(t *testing.T) {
	buckets := slices.Collect(GenerateSlots(fridayAfternoon, FallbackWeek(), 2))
	require.Len(t, buckets, 2)

	cutoff := RoundUpToHalfHour(fridayAfternoon)
	today := buckets[0]
	require.Len(t, today.Slots, 9) // 14:30 .. 18:30
	for _, s := range today.Slots {
		assert.False(t, s.Instant.Before(cutoff))
	}
	assert.True(t, time.Date(2026, 10, 16, 14, 30, 0, 0, ReferenceLocation).Equal(today.Slots[0].Instant))
	assert.True(t, time.Date(2026, 10, 16, 18, 30, 0, 0, ReferenceLocation).Equal(today.Slots[8].Instant))

	// future days are not filtered: (19-10)*2 slots
	assert.Len(t, buckets[1].Slots, 18)
}

func TestGenerateSlots_FutureDayCountMatchesHours(t *testing.T) {
	week := FallbackWeek()
	week.Days[time.Saturday] = DayHours{StartHour: 9, EndHour: 13, Configured: true}

	buckets := slices.Collect(GenerateSlots(fridayAfternoon, week, 2))
	saturday := buckets[1]
	assert.Equal(t, int(time.Saturday), saturday.Weekday)
	assert.Len(t, saturday.Slots, (13-9)*2)
	assert.Equal(t, "Sat, 17 Oct 09:00", saturday.Slots[0].Label)
	assert.Equal(t, "Sat, 17 Oct 12:30", saturday.Slots[len(saturday.Slots)-1].Label)
}

func TestGenerateSlots_ClosedDayIsEmpty(t *testing.T) {
	week := FallbackWeek()
	week.Days[time.Sunday] = DayHours{Closed: true, Configured: true}

	buckets := slices.Collect(GenerateSlots(fridayAfternoon, week, 3))
	sunday := buckets[2]
	assert.Equal(t, "2026-10-18", sunday.Date)
	assert.True(t, sunday.Closed)
	assert.True(t, sunday.IsEmpty())
	assert.NotNil(t, sunday.Slots)
}

func TestGenerateSlots_AfterCloseTodayIsEmpty(t *testing.T) {
	evening := time.Date(2026, 10, 16, 21, 5, 0, 0, ReferenceLocation)
	buckets := slices.Collect(GenerateSlots(evening, FallbackWeek(), 2))
	assert.Empty(t, buckets[0].Slots)
	assert.Len(t, buckets[1].Slots, 18)
}

func TestGenerateSlots_MonthWrap(t *testing.T) {
	now := time.Date(2026, 10, 31, 9, 0, 0, 0, ReferenceLocation)
	buckets := slices.Collect(GenerateSlots(now, FallbackWeek(), 3))
	assert.Equal(t, "2026-10-31", buckets[0].Date)
	assert.Equal(t, "2026-11-01", buckets[1].Date)
	assert.Equal(t, "2026-11-02", buckets[2].Date)
}

func TestGenerateSlots_Restartable(t *testing.T) {
	seq := GenerateSlots(fridayAfternoon, FallbackWeek(), 5)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
}

func TestGenerateSlots_StopsEarly(t *testing.T) {
	count := 0
	for range GenerateSlots(fridayAfternoon, FallbackWeek(), 30) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestEvaluateSlot(t *testing.T) {
	week := FallbackWeek()
	week.Days[time.Sunday] = DayHours{Closed: true, Configured: true}

	at := func(day, h, m int) time.Time {
		return time.Date(2026, 10, day, h, m, 0, 0, ReferenceLocation)
	}

	tests := []struct {
		name    string
		instant time.Time
		reason  RejectionReason
		weekday time.Weekday
	}{
		{"yesterday is past", at(15, 11, 0), ReasonSlotInPast, time.Thursday},
		{"earlier today is past", at(16, 14, 0), ReasonSlotInPast, time.Friday},
		{"rounded now is accepted", at(16, 14, 30), "", time.Friday},
		{"last half hour before close", at(16, 18, 30), "", time.Friday},
		{"closing hour is out of hours", at(16, 19, 0), ReasonSlotOutOfHours, time.Friday},
		{"evening is out of hours", at(16, 20, 0), ReasonSlotOutOfHours, time.Friday},
		{"before opening", at(17, 9, 30), ReasonSlotOutOfHours, time.Saturday},
		{"closed weekday", at(18, 12, 0), ReasonSlotOutOfHours, time.Sunday},
		{"past wins over out of hours", at(15, 22, 0), ReasonSlotInPast, time.Thursday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := EvaluateSlot(fridayAfternoon, week, tt.instant)
			assert.Equal(t, tt.reason, v.Reason)
			assert.Equal(t, tt.reason == "", v.Accepted)
			assert.Equal(t, int(tt.weekday), v.Weekday)
		})
	}
}

func TestEvaluateSlot_OutOfHoursCarriesWindow(t *testing.T) {
	v := EvaluateSlot(fridayAfternoon, FallbackWeek(), time.Date(2026, 10, 16, 20, 0, 0, 0, ReferenceLocation))
	require.True(t, v.IsOutOfHours())
	assert.Equal(t, 10, v.Hours.StartHour)
	assert.Equal(t, 19, v.Hours.EndHour)
	assert.Equal(t, int(time.Friday), v.Weekday)
}

func TestSlotCutoff_SecondsPastHalfHour(t *testing.T) {
	now := time.Date(2026, 10, 16, 14, 30, 45, 0, ReferenceLocation)

	today := slices.Collect(GenerateSlots(now, FallbackWeek(), 1))[0]
	require.NotEmpty(t, today.Slots)
	assert.True(t, time.Date(2026, 10, 16, 15, 0, 0, 0, ReferenceLocation).Equal(today.Slots[0].Instant))

	v := EvaluateSlot(now, FallbackWeek(), time.Date(2026, 10, 16, 14, 30, 0, 0, ReferenceLocation))
	assert.Equal(t, ReasonSlotInPast, v.Reason)
}
