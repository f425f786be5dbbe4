package domain

// DayHours is the resolved business window for one weekday.
// Configured reports whether it came from the provider or from the fallback.
type DayHours struct {
	Closed     bool
	StartHour  int
	EndHour    int
	Configured bool
}

// FallbackDayHours returns the default {10,19} window.
func FallbackDayHours() DayHours {
	return DayHours{StartHour: FallbackStartHour, EndHour: FallbackEndHour}
}

// Contains reports whether the reference calendar hour lies in [StartHour, EndHour).
// A closed day contains no hour.
func (d DayHours) Contains(hour int) bool {
	if d.Closed {
		return false
	}
	return hour >= d.StartHour && hour < d.EndHour
}

// ValidHours reports whether start/end form a usable open window.
func ValidHours(start, end int) bool {
	return start >= MinHour && start <= MaxHour &&
		end >= MinHour && end <= MaxHour &&
		start < end
}

// WeeklyHours is a full week of resolved hours indexed Sunday=0 … Saturday=6.
// Configured is true when the provider returned a usable configuration for at
// least one weekday.
type WeeklyHours struct {
	Days       [7]DayHours
	Configured bool
}

// FallbackWeek returns the fallback window for every weekday.
func FallbackWeek() WeeklyHours {
	var w WeeklyHours
	for i := range w.Days {
		w.Days[i] = FallbackDayHours()
	}
	return w
}

// For returns the hours of the given weekday (Sunday=0).
func (w WeeklyHours) For(weekday int) DayHours {
	return w.Days[((weekday%7)+7)%7]
}
