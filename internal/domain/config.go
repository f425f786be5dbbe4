package domain

import (
	"fmt"
	"time"
)

// NudgeConfig is a provider's automated-send policy.
// UpdatedAt is nil when the default is in effect.
type NudgeConfig struct {
	QuietStart int
	QuietEnd   int
	DailyCap   int
	UpdatedAt  *time.Time
}

// DefaultNudgeConfig returns the {22, 8, 25} policy used when nothing was logged
func DefaultNudgeConfig() NudgeConfig {
	return NudgeConfig{
		QuietStart: DefaultQuietStart,
		QuietEnd:   DefaultQuietEnd,
		DailyCap:   DefaultDailyCap,
	}
}

// IsDefault returns true if the config was not loaded from the event log
func (c NudgeConfig) IsDefault() bool {
	return c.UpdatedAt == nil
}

// Validate checks hour bounds and a non-negative cap
func (c NudgeConfig) Validate() error {
	if c.QuietStart < MinHour || c.QuietStart > MaxHour {
		return fmt.Errorf("quiet_start must be in [%d,%d], got %d", MinHour, MaxHour, c.QuietStart)
	}
	if c.QuietEnd < MinHour || c.QuietEnd > MaxHour {
		return fmt.Errorf("quiet_end must be in [%d,%d], got %d", MinHour, MaxHour, c.QuietEnd)
	}
	if c.DailyCap < 0 {
		return fmt.Errorf("cap must be non-negative, got %d", c.DailyCap)
	}
	return nil
}

// IsQuiet reports whether the reference calendar hour is inside this config's quiet window
func (c NudgeConfig) IsQuiet(hour int) bool {
	return IsQuietHour(hour, c.QuietStart, c.QuietEnd)
}

// IsQuietHour is the single quiet-window predicate.
// start <= end: quiet iff start <= hour < end (start == end is never quiet).
// start > end: the window wraps midnight, quiet iff hour >= start || hour < end.
// The end hour itself is not quiet; confirm with product before changing.
func IsQuietHour(hour, start, end int) bool {
	if start <= end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

// RemainingCapacity returns max(0, dailyCap - sent)
func RemainingCapacity(dailyCap, sent int) int {
	if sent >= dailyCap {
		return 0
	}
	return dailyCap - sent
}

// CapUsage is today's send count against the daily cap.
// Degraded is set when the count could not be read and the cap was assumed exhausted.
type CapUsage struct {
	Sent      int
	Remaining int
	Degraded  bool
}

// NudgeDecision is the composed quiet-hours and cap verdict
type NudgeDecision struct {
	Allowed   bool
	IsQuiet   bool
	Remaining int
	SentToday int
	Config    NudgeConfig
	Degraded  bool
	DecidedAt time.Time
}

// Decide composes the quiet window and the cap usage into one decision
func Decide(now time.Time, cfg NudgeConfig, usage CapUsage) NudgeDecision {
	quiet := cfg.IsQuiet(ToReferenceCalendar(now).Hour)
	return NudgeDecision{
		Allowed:   !quiet && usage.Remaining > 0,
		IsQuiet:   quiet,
		Remaining: usage.Remaining,
		SentToday: usage.Sent,
		Config:    cfg,
		Degraded:  usage.Degraded,
		DecidedAt: now,
	}
}
