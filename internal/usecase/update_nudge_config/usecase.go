package update_nudge_config

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/nudgeconfig"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// UseCase use case изменения конфигурации отправок.
// Конфигурация не хранится отдельно: пишется событие nudge_config_changed,
// последнее такое событие и есть действующая конфигурация
type UseCase struct {
	providers    ProviderResolver
	writer       EventLogWriter
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	providers ProviderResolver,
	writer EventLogWriter,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		providers:    providers,
		writer:       writer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case изменения конфигурации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateNudgeConfig: providerRef=%s", req.ProviderRef)

	// 1. Валидация входных данных
	cfg, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateNudgeConfig: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем внутренний ID провайдера
	providerID := uc.providers.Resolve(ctx, req.ProviderRef)

	// 3. Формируем событие
	payload, err := nudgeconfig.ToPayload(cfg)
	if err != nil {
		uc.logger.Error("UpdateNudgeConfig: failed to encode payload: %v", err)
		return nil, fmt.Errorf("%w: encode payload: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	event := domain.Event{
		ID:         uuid.NewString(),
		ProviderID: providerID,
		Type:       domain.EventNudgeConfigChanged,
		Payload:    payload,
		LoggedAt:   now,
	}

	// 4. Пишем синхронно: клиент должен знать, что конфигурация сохранена
	if err := uc.writer.Append(ctx, event); err != nil {
		uc.logger.Error("UpdateNudgeConfig: failed to append event for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: append event: %v", ErrInternal, err)
	}

	cfg.UpdatedAt = ptr.Ptr(now)

	uc.logger.Info("UpdateNudgeConfig: provider=%s, quiet=%d-%d, cap=%d, event_id=%s",
		providerID, cfg.QuietStart, cfg.QuietEnd, cfg.DailyCap, event.ID)

	return &Response{
		ProviderID: providerID,
		EventID:    event.ID,
		Config:     cfg,
	}, nil
}
