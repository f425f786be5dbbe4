package ratecap

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Counter считает отправки провайдера за текущие сутки по журналу событий
type Counter struct {
	reader  EventLogReader
	metrics Metrics
	logger  Logger
}

// NewCounter создает новый экземпляр счетчика отправок
func NewCounter(reader EventLogReader, metrics Metrics, logger Logger) *Counter {
	return &Counter{
		reader:  reader,
		metrics: metrics,
		logger:  logger,
	}
}

// SentToday возвращает число событий отправки с logged_at >= dayStart.
// dayStart считается вызывающим через domain.StartOfReferenceDay, не по локальному времени хоста
func (c *Counter) SentToday(ctx context.Context, providerID string, dayStart time.Time) (int, error) {
	sent, err := c.reader.CountSince(ctx, providerID, domain.SendEventTypes, dayStart)
	if err != nil {
		return 0, fmt.Errorf("%w: provider=%s: %v", ErrCountUnavailable, providerID, err)
	}
	return sent, nil
}

// Usage возвращает использование лимита. Если журнал недоступен, лимит
// считается исчерпанным (sent = dailyCap, Degraded=true)
func (c *Counter) Usage(ctx context.Context, providerID string, dayStart time.Time, dailyCap int) domain.CapUsage {
	sent, err := c.SentToday(ctx, providerID, dayStart)
	if err != nil {
		c.logger.Error("Usage: failed to count sends for provider=%s, treating cap as exhausted: %v", providerID, err)
		c.metrics.IncCapReadFailure()
		return domain.CapUsage{
			Sent:      dailyCap,
			Remaining: 0,
			Degraded:  true,
		}
	}

	return domain.CapUsage{
		Sent:      sent,
		Remaining: domain.RemainingCapacity(dailyCap, sent),
	}
}
