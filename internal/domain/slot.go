package domain

import (
	"iter"
	"time"
)

// Slot represents an appointment start offered to a client
type Slot struct {
	Instant time.Time
	Label   string // human readable, reference calendar
}

// NewSlot builds a slot and its label from an instant
func NewSlot(instant time.Time) Slot {
	return Slot{
		Instant: instant,
		Label:   instant.In(ReferenceLocation).Format(SlotLabelFormat),
	}
}

// DaySlots is the bucket of slots for one reference calendar date
type DaySlots struct {
	Date    string // YYYY-MM-DD
	Weekday int
	Closed  bool
	Slots   []Slot
}

// IsEmpty returns true if the day offers no slot
func (d *DaySlots) IsEmpty() bool {
	return len(d.Slots) == 0
}

// GenerateSlots enumerates half-hour slots for `days` consecutive reference
// calendar days starting today. Only today's bucket is filtered against
// RoundUpToHalfHour(now). The sequence is pure: iterating it twice with the
// same inputs yields the same buckets.
func GenerateSlots(now time.Time, week WeeklyHours, days int) iter.Seq[DaySlots] {
	days = ClampDays(days)
	today := ToReferenceCalendar(now)
	cutoff := RoundUpToHalfHour(now)

	return func(yield func(DaySlots) bool) {
		for i := 0; i < days; i++ {
			date := ReferenceInstant(today.Year, today.Month, today.Day+i, 0, 0)
			cal := ToReferenceCalendar(date)
			hours := week.For(cal.Weekday)

			bucket := DaySlots{
				Date:    cal.Date(),
				Weekday: cal.Weekday,
				Closed:  hours.Closed,
				Slots:   []Slot{},
			}

			if !hours.Closed {
				for hour := hours.StartHour; hour < hours.EndHour; hour++ {
					for minute := 0; minute < 60; minute += SlotStepMinutes {
						candidate := ReferenceInstant(cal.Year, cal.Month, cal.Day, hour, minute)
						if i == 0 && candidate.Before(cutoff) {
							continue
						}
						bucket.Slots = append(bucket.Slots, NewSlot(candidate))
					}
				}
			}

			if !yield(bucket) {
				return
			}
		}
	}
}
