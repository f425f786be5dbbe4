package domain

// Fallback business hours, used per weekday when the provider has no usable entry
const (
	FallbackStartHour = 10
	FallbackEndHour   = 19
)

// Slot generation
const (
	SlotStepMinutes         = 30
	DefaultAvailabilityDays = 14
	MinAvailabilityDays     = 1
	MaxAvailabilityDays     = 30
)

// Default nudge configuration, applied when the provider never logged one
const (
	DefaultQuietStart = 22
	DefaultQuietEnd   = 8
	DefaultDailyCap   = 25
)

// Hour bounds for business hours and quiet windows
const (
	MinHour = 0
	MaxHour = 23
)

// Time format constants
const (
	DateFormat      = "2006-01-02"       // YYYY-MM-DD
	SlotLabelFormat = "Mon, 02 Jan 15:04" // in the reference calendar
)

// ClampDays bounds the requested availability horizon to [MinAvailabilityDays, MaxAvailabilityDays].
func ClampDays(days int) int {
	if days < MinAvailabilityDays {
		return MinAvailabilityDays
	}
	if days > MaxAvailabilityDays {
		return MaxAvailabilityDays
	}
	return days
}
