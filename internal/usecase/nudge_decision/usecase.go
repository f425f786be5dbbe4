package nudge_decision

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

const operation = "nudge_decision"

// UseCase use case решения, можно ли сейчас отправить автоматическое сообщение
type UseCase struct {
	providers    ProviderResolver
	configs      ConfigLoader
	counter      CapCounter
	recorder     DecisionRecorder
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	providers ProviderResolver,
	configs ConfigLoader,
	counter CapCounter,
	recorder DecisionRecorder,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		providers:    providers,
		configs:      configs,
		counter:      counter,
		recorder:     recorder,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case. Решение считается полностью до записи в журнал;
// запись идет в фоне и не влияет на ответ.
// Два параллельных вызова для одного провайдера могут оба увидеть remaining > 0
// (гонка за лимит): журнал внешний и общий, блокировок на нем нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("NudgeDecision: providerRef=%s", req.ProviderRef)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("NudgeDecision: validation failed: %v", err)
		uc.metrics.IncSchedulingDecision(operation, string(domain.ReasonMissingParams))
		return nil, err
	}

	// 2. Получаем внутренний ID провайдера
	providerID := uc.providers.Resolve(ctx, req.ProviderRef)

	// 3. Фиксируем "сейчас" один раз на все решение
	now := uc.timeProvider.Now()

	// 4. Загружаем конфигурацию (последнее событие или по умолчанию)
	cfg, cfgErr := uc.configs.Load(ctx, providerID)
	switch {
	case cfgErr != nil:
		uc.logger.Error("NudgeDecision: config unavailable for provider=%s, denying: %v", providerID, cfgErr)
	case cfg.IsDefault():
		uc.logger.Info("NudgeDecision: using default config for provider=%s", providerID)
	}

	// 5. Считаем отправки с начала суток по IST
	usage := uc.counter.Usage(ctx, providerID, domain.StartOfReferenceDay(now), cfg.DailyCap)

	// Без конфигурации лимит неизвестен: считаем его исчерпанным
	if cfgErr != nil {
		usage.Remaining = 0
		usage.Degraded = true
	}

	// 6. Композиция тихих часов и лимита
	decision := domain.Decide(now, cfg, usage)

	// 7. Фоновая запись решения, ответ ее не ждет
	uc.recorder.Record(ctx, providerID, decision)

	outcome := "allowed"
	switch {
	case decision.Allowed:
	case decision.IsQuiet:
		outcome = "quiet_hours"
	case decision.Degraded:
		outcome = "degraded"
	default:
		outcome = "cap_exhausted"
	}
	uc.metrics.IncSchedulingDecision(operation, outcome)

	uc.logger.Info("NudgeDecision: provider=%s, outcome=%s, sent_today=%d, remaining=%d, quiet=%d-%d, cap=%d, degraded=%t",
		providerID, outcome, decision.SentToday, decision.Remaining,
		cfg.QuietStart, cfg.QuietEnd, cfg.DailyCap, decision.Degraded)

	return &Response{
		ProviderID: providerID,
		Decision:   decision,
	}, nil
}
