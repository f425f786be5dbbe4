package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/clock"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeProviders struct{}

func (fakeProviders) Resolve(_ context.Context, ref string) string { return "id-" + ref }

type fakeHours struct {
	week  domain.WeeklyHours
	gotID string
}

func (f *fakeHours) Resolve(_ context.Context, providerID string) domain.WeeklyHours {
	f.gotID = providerID
	return f.week
}

type fakeMetrics struct {
	outcomes []string
}

func (f *fakeMetrics) IncSchedulingDecision(_, outcome string) {
	f.outcomes = append(f.outcomes, outcome)
}

// Friday 16 Oct 2026, 14:10 IST
var now = time.Date(2026, 10, 16, 14, 10, 0, 0, domain.ReferenceLocation)

func newUseCase(week domain.WeeklyHours) (*UseCase, *fakeHours, *fakeMetrics) {
	hours := &fakeHours{week: week}
	m := &fakeMetrics{}
	return NewUseCase(fakeProviders{}, hours, clock.NewFixed(now), m, logger.NewNop()), hours, m
}

func TestExecute_ReturnsRequestedDays(t *testing.T) {
	for _, tt := range []struct{ days, want int }{{1, 1}, {14, 14}, {30, 30}, {0, 1}, {-5, 1}, {45, 30}} {
		uc, _, _ := newUseCase(domain.FallbackWeek())

		resp, err := uc.Execute(context.Background(), &Request{ProviderRef: "p1", Days: tt.days})
		require.NoError(t, err)
		require.Len(t, resp.Days, tt.want, "days=%d", tt.days)
		assert.Equal(t, "2026-10-16", resp.Days[0].Date)
	}
}

func TestExecute_UsesResolvedProviderAndHours(t *testing.T) {
	week := domain.FallbackWeek()
	week.Days[time.Saturday] = domain.DayHours{StartHour: 9, EndHour: 12, Configured: true}
	week.Configured = true
	uc, hours, m := newUseCase(week)

	resp, err := uc.Execute(context.Background(), &Request{ProviderRef: "p1", Days: 2})
	require.NoError(t, err)

	assert.Equal(t, "id-p1", hours.gotID)
	assert.Equal(t, "id-p1", resp.ProviderID)
	assert.True(t, resp.HoursResolved)
	assert.Len(t, resp.Days[1].Slots, 6)
	assert.Len(t, resp.Days[0].Slots, 9) // 14:30 .. 18:30
	assert.Equal(t, 15, resp.SlotCount())
	assert.Equal(t, []string{"ok"}, m.outcomes)
}

func TestExecute_NoPastSlotsToday(t *testing.T) {
	uc, _, _ := newUseCase(domain.FallbackWeek())

	resp, err := uc.Execute(context.Background(), &Request{ProviderRef: "p1", Days: 1})
	require.NoError(t, err)
	assert.False(t, resp.HoursResolved)

	cutoff := domain.RoundUpToHalfHour(now)
	for _, s := range resp.Days[0].Slots {
		assert.False(t, s.Instant.Before(cutoff))
	}
}

func TestExecute_MissingProviderRef(t *testing.T) {
	uc, hours, m := newUseCase(domain.FallbackWeek())

	_, err := uc.Execute(context.Background(), &Request{ProviderRef: "  ", Days: 14})
	assert.ErrorIs(t, err, ErrMissingParams)
	assert.Empty(t, hours.gotID)
	assert.Equal(t, []string{"missing_params"}, m.outcomes)
}
