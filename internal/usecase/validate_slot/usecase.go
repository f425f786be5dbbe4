package validate_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

const operation = "validate_slot"

// UseCase use case проверки одного предложенного слота
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

// Execute выполняет проверку слота. Порядок причин отказа:
// missing_params, invalid_slotISO, slot_in_past, slot_out_of_hours
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateSlot: providerRef=%s, slotISO=%s", req.ProviderRef, req.SlotISO)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateSlot: validation failed: %v", err)
		uc.metrics.IncSchedulingDecision(operation, string(domain.ReasonMissingParams))
		return nil, err
	}

	// 2. Разбираем момент слота
	slot, err := parseSlot(req.SlotISO)
	if err != nil {
		uc.logger.Warn("ValidateSlot: %v", err)
		uc.metrics.IncSchedulingDecision(operation, string(domain.ReasonInvalidSlot))
		return nil, err
	}

	booking := domain.BookingRequest{ProviderRef: req.ProviderRef, SlotInstant: slot}

	// 3. Получаем внутренний ID и расписание провайдера
	providerID := uc.providers.Resolve(ctx, booking.ProviderRef)
	week := uc.hours.Resolve(ctx, providerID)

	// 4. Применяем правила прошлого и рабочих часов
	verdict := domain.EvaluateSlot(uc.timeProvider.Now(), week, booking.SlotInstant)

	outcome := "accepted"
	if !verdict.Accepted {
		outcome = string(verdict.Reason)
	}
	uc.metrics.IncSchedulingDecision(operation, outcome)

	uc.logger.Info("ValidateSlot: provider=%s, slot=%s, outcome=%s, weekday=%d, hours=%d-%d, hoursResolved=%t",
		providerID, booking.SlotInstant.UTC().Format(time.RFC3339), outcome,
		verdict.Weekday, verdict.Hours.StartHour, verdict.Hours.EndHour, week.Configured)

	return &Response{
		ProviderID:    providerID,
		HoursResolved: week.Configured,
		Verdict:       verdict,
	}, nil
}
