package get_availability

import (
	"context"
	"slices"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

const operation = "availability"

// UseCase use case получения доступных слотов на несколько дней вперед
type UseCase struct {
	providers    ProviderResolver
	hours        HoursResolver
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	providers ProviderResolver,
	hours HoursResolver,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		providers:    providers,
		hours:        hours,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: providerRef=%s, days=%d", req.ProviderRef, req.Days)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		uc.metrics.IncSchedulingDecision(operation, string(domain.ReasonMissingParams))
		return nil, err
	}

	// 2. Ограничиваем горизонт
	days := domain.ClampDays(req.Days)

	// 3. Получаем внутренний ID провайдера
	providerID := uc.providers.Resolve(ctx, req.ProviderRef)

	// 4. Получаем расписание (никогда не падает, в худшем случае fallback)
	week := uc.hours.Resolve(ctx, providerID)

	// 5. Генерируем слоты от текущего момента
	now := uc.timeProvider.Now()
	buckets := slices.Collect(domain.GenerateSlots(now, week, days))

	resp := &Response{
		ProviderID:    providerID,
		HoursResolved: week.Configured,
		Days:          buckets,
	}

	uc.metrics.IncSchedulingDecision(operation, "ok")
	uc.logger.Info("GetAvailability: provider=%s, days=%d, slots=%d, hoursResolved=%t",
		providerID, days, resp.SlotCount(), resp.HoursResolved)

	return resp, nil
}
