package ratecap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeReader struct {
	count int
	err   error

	gotProvider string
	gotTypes    []domain.EventType
	gotSince    time.Time
}

func (f *fakeReader) CountSince(_ context.Context, providerID string, types []domain.EventType, since time.Time) (int, error) {
	f.gotProvider = providerID
	f.gotTypes = types
	f.gotSince = since
	return f.count, f.err
}

type fakeMetrics struct {
	failures int
}

func (f *fakeMetrics) IncCapReadFailure() { f.failures++ }

var dayStart = time.Date(2026, 10, 16, 0, 0, 0, 0, domain.ReferenceLocation)

func TestCounter_SentToday(t *testing.T) {
	reader := &fakeReader{count: 7}
	c := NewCounter(reader, &fakeMetrics{}, logger.NewNop())

	sent, err := c.SentToday(context.Background(), "p1", dayStart)
	require.NoError(t, err)
	assert.Equal(t, 7, sent)
	assert.Equal(t, "p1", reader.gotProvider)
	assert.Equal(t, domain.SendEventTypes, reader.gotTypes)
	assert.True(t, dayStart.Equal(reader.gotSince))
}

func TestCounter_Usage(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		dailyCap  int
		remaining int
	}{
		{"under cap", 20, 25, 5},
		{"at cap", 25, 25, 0},
		{"over cap", 30, 25, 0},
		{"zero cap", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCounter(&fakeReader{count: tt.count}, &fakeMetrics{}, logger.NewNop())

			usage := c.Usage(context.Background(), "p1", dayStart, tt.dailyCap)

			assert.Equal(t, tt.count, usage.Sent)
			assert.Equal(t, tt.remaining, usage.Remaining)
			assert.False(t, usage.Degraded)
		})
	}
}

func TestCounter_UsageFailsClosed(t *testing.T) {
	m := &fakeMetrics{}
	c := NewCounter(&fakeReader{err: errors.New("connection refused")}, m, logger.NewNop())

	_, err := c.SentToday(context.Background(), "p1", dayStart)
	assert.ErrorIs(t, err, ErrCountUnavailable)

	usage := c.Usage(context.Background(), "p1", dayStart, 25)
	assert.Equal(t, domain.CapUsage{Sent: 25, Remaining: 0, Degraded: true}, usage)
	assert.Equal(t, 1, m.failures)
}
