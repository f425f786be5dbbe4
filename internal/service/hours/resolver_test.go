package hours

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/hoursservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeClient struct {
	hours *hoursservice.WeeklyHours
	err   error
	calls int
}

func (f *fakeClient) GetWeeklyHours(_ context.Context, _ string) (*hoursservice.WeeklyHours, error) {
	f.calls++
	return f.hours, f.err
}

type fakeMetrics struct {
	reasons []string
}

func (f *fakeMetrics) IncHoursFallback(reason string) {
	f.reasons = append(f.reasons, reason)
}

func payload(t *testing.T, days map[string]string) *hoursservice.WeeklyHours {
	t.Helper()
	out := &hoursservice.WeeklyHours{Days: map[string]json.RawMessage{}}
	for k, v := range days {
		require.True(t, json.Valid([]byte(v)), "invalid fixture %s", v)
		out.Days[k] = json.RawMessage(v)
	}
	return out
}

func newResolver(client *fakeClient) (*Resolver, *fakeMetrics) {
	m := &fakeMetrics{}
	return NewResolver(client, m, logger.NewNop()), m
}

func TestResolve_MondayOnlyGetsPartialFallback(t *testing.T) {
	client := &fakeClient{hours: payload(t, map[string]string{
		"1": `{"start":9,"end":17}`,
		"2": `{"start":"nine","end":17}`,
		"3": `{"start":18,"end":9}`,
		"4": `{"start":9.5,"end":17}`,
		"5": `{"start":9,"end":24}`,
		"6": `"open"`,
	})}
	r, m := newResolver(client)

	week := r.Resolve(context.Background(), "p1")

	assert.True(t, week.Configured)
	assert.Equal(t, domain.DayHours{StartHour: 9, EndHour: 17, Configured: true}, week.For(1))
	for _, wd := range []int{0, 2, 3, 4, 5, 6} {
		assert.Equal(t, domain.FallbackDayHours(), week.For(wd), "weekday %d", wd)
	}
	assert.Contains(t, m.reasons, reasonMalformedEntry)
	assert.Contains(t, m.reasons, reasonMissingEntry)
}

func TestResolve_ClosedDayAndWeekdayNames(t *testing.T) {
	client := &fakeClient{hours: payload(t, map[string]string{
		"sunday":  `{"closed":true}`,
		"Tuesday": `{"start":11,"end":20}`,
	})}
	r, _ := newResolver(client)

	week := r.Resolve(context.Background(), "p1")

	assert.True(t, week.Configured)
	assert.True(t, week.For(0).Closed)
	assert.Equal(t, domain.DayHours{StartHour: 11, EndHour: 20, Configured: true}, week.For(2))
	assert.Equal(t, domain.FallbackDayHours(), week.For(1))
}

func TestResolve_NumericKeyWinsOverName(t *testing.T) {
	client := &fakeClient{hours: payload(t, map[string]string{
		"1":      `{"start":8,"end":12}`,
		"monday": `{"start":13,"end":18}`,
	})}
	r, _ := newResolver(client)

	assert.Equal(t, 8, r.Resolve(context.Background(), "p1").For(1).StartHour)
}

func TestResolve_FailsOpen(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
		reason string
	}{
		{"not configured", &fakeClient{err: hoursservice.ErrHoursNotFound}, reasonNotConfigured},
		{"unreachable", &fakeClient{err: fmt.Errorf("%w: dial tcp", hoursservice.ErrInternal)}, reasonFetchError},
		{"timeout", &fakeClient{err: context.DeadlineExceeded}, reasonFetchError},
		{"empty days", &fakeClient{hours: &hoursservice.WeeklyHours{}}, reasonEmpty},
		{"all malformed", &fakeClient{hours: payload(t, map[string]string{"1": `{"start":17,"end":17}`})}, reasonEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, m := newResolver(tt.client)

			week := r.Resolve(context.Background(), "p1")

			assert.Equal(t, domain.FallbackWeek(), week)
			assert.False(t, week.Configured)
			assert.Equal(t, []string{tt.reason}, m.reasons)
		})
	}
}

func TestResolve_NeverCaches(t *testing.T) {
	client := &fakeClient{err: errors.New("down")}
	r, _ := newResolver(client)

	r.Resolve(context.Background(), "p1")
	client.err = nil
	client.hours = payload(t, map[string]string{"1": `{"start":9,"end":17}`})
	week := r.Resolve(context.Background(), "p1")

	assert.Equal(t, 2, client.calls)
	assert.Equal(t, 9, week.For(1).StartHour)
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		raw string
		ok  bool
	}{
		{`{"start":0,"end":23}`, true},
		{`{"closed":true}`, true},
		{`{"closed":true,"start":"x"}`, true},
		{`{"closed":false}`, false},
		{`{"start":-1,"end":5}`, false},
		{`{"start":9}`, false},
		{`{"start":null,"end":17}`, false},
		{`null`, false},
		{`[]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, ok := parseDay(json.RawMessage(tt.raw))
			assert.Equal(t, tt.ok, ok)
		})
	}
}
