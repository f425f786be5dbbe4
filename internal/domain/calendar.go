package domain

import "time"

// ReferenceLocation is the fixed calendar timezone (IST, UTC+5:30, no DST)
// used for every weekday/hour derivation regardless of host locale.
var ReferenceLocation = time.FixedZone("IST", 5*60*60+30*60)

// CalendarTime is an instant broken down in the reference calendar.
// Weekday follows the Sunday=0 convention.
type CalendarTime struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Minute  int
	Weekday int
}

// ToReferenceCalendar converts an instant into reference calendar fields.
func ToReferenceCalendar(t time.Time) CalendarTime {
	local := t.In(ReferenceLocation)
	return CalendarTime{
		Year:    local.Year(),
		Month:   local.Month(),
		Day:     local.Day(),
		Hour:    local.Hour(),
		Minute:  local.Minute(),
		Weekday: int(local.Weekday()),
	}
}

// Date formats the calendar date as YYYY-MM-DD.
func (c CalendarTime) Date() string {
	return ReferenceInstant(c.Year, c.Month, c.Day, 0, 0).Format(DateFormat)
}

// ReferenceInstant builds the instant for a wall-clock time in the reference calendar.
// Out-of-range day values are normalized the way time.Date does.
func ReferenceInstant(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, ReferenceLocation)
}

// RoundUpToHalfHour returns t unchanged when its minute is 0, otherwise the
// first :00 or :30 boundary at or after t, with seconds truncated. The result
// is never earlier than t. This is the single "now" cutoff shared by slot
// generation and slot validation.
func RoundUpToHalfHour(t time.Time) time.Time {
	local := t.In(ReferenceLocation)
	if local.Minute() == 0 {
		return t
	}

	base := time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, ReferenceLocation)
	half := base.Add(30 * time.Minute)
	if !local.After(half) {
		return half
	}
	return base.Add(time.Hour)
}

// StartOfReferenceDay returns midnight of t's reference calendar date.
func StartOfReferenceDay(t time.Time) time.Time {
	c := ToReferenceCalendar(t)
	return ReferenceInstant(c.Year, c.Month, c.Day, 0, 0)
}
