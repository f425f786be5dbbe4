package domain

import "time"

// BookingRequest is a proposed slot for a provider
type BookingRequest struct {
	ProviderRef string
	SlotInstant time.Time
}

// RejectionReason explains why a proposed slot was refused
type RejectionReason string

const (
	ReasonMissingParams  RejectionReason = "missing_params"
	ReasonInvalidSlot    RejectionReason = "invalid_slotISO"
	ReasonSlotInPast     RejectionReason = "slot_in_past"
	ReasonSlotOutOfHours RejectionReason = "slot_out_of_hours"
)

// SlotVerdict is the outcome of checking one proposed slot against the clock and hours
type SlotVerdict struct {
	Accepted bool
	Reason   RejectionReason // empty when accepted
	Weekday  int             // reference calendar weekday of the slot
	Hours    DayHours        // resolved window for that weekday
}

// IsOutOfHours returns true if the slot was refused for falling outside business hours
func (v SlotVerdict) IsOutOfHours() bool {
	return v.Reason == ReasonSlotOutOfHours
}

// EvaluateSlot applies the past-cutoff and business-hours rules to one instant.
// First match wins: past, then out of hours (closed weekday included).
func EvaluateSlot(now time.Time, week WeeklyHours, instant time.Time) SlotVerdict {
	cal := ToReferenceCalendar(instant)
	hours := week.For(cal.Weekday)

	verdict := SlotVerdict{Weekday: cal.Weekday, Hours: hours}

	if instant.Before(RoundUpToHalfHour(now)) {
		verdict.Reason = ReasonSlotInPast
		return verdict
	}

	if !hours.Contains(cal.Hour) {
		verdict.Reason = ReasonSlotOutOfHours
		return verdict
	}

	verdict.Accepted = true
	return verdict
}
