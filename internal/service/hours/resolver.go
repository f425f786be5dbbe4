package hours

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/hoursservice"
)

// Resolver получает недельное расписание провайдера и сливает его с fallback
type Resolver struct {
	client  HoursServiceClient
	metrics Metrics
	logger  Logger
}

// NewResolver создает новый экземпляр резолвера рабочих часов
func NewResolver(client HoursServiceClient, metrics Metrics, logger Logger) *Resolver {
	return &Resolver{
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve возвращает расписание на неделю и никогда не завершается ошибкой.
// Недоступность сервиса, таймаут, 404 или пустой ответ дают fallback на всю неделю
// с Configured=false; битые записи заменяются fallback только для своего дня
func (r *Resolver) Resolve(ctx context.Context, providerID string) domain.WeeklyHours {
	payload, err := r.client.GetWeeklyHours(ctx, providerID)
	if err != nil {
		if errors.Is(err, hoursservice.ErrHoursNotFound) {
			r.logger.Info("Resolve: provider=%s has no hours configured, using fallback", providerID)
			r.metrics.IncHoursFallback(reasonNotConfigured)
		} else {
			r.logger.Error("Resolve: failed to fetch hours for provider=%s, using fallback: %v", providerID, err)
			r.metrics.IncHoursFallback(reasonFetchError)
		}
		return domain.FallbackWeek()
	}

	res := mergeWeek(payload)

	if !res.week.Configured {
		r.logger.Info("Resolve: provider=%s returned no usable entries, using fallback", providerID)
		r.metrics.IncHoursFallback(reasonEmpty)
		return res.week
	}

	if len(res.malformed) > 0 {
		r.logger.Warn("Resolve: provider=%s malformed entries for weekdays %v, fallback applied to those days",
			providerID, res.malformed)
		r.metrics.IncHoursFallback(reasonMalformedEntry)
	}
	if len(res.missing) > 0 {
		r.metrics.IncHoursFallback(reasonMissingEntry)
	}

	return res.week
}
