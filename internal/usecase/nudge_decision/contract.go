package nudge_decision

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ProviderResolver переводит providerRef во внутренний ID
type ProviderResolver interface {
	Resolve(ctx context.Context, ref string) string
}

// ConfigLoader возвращает действующую конфигурацию отправок (или по умолчанию).
// Ошибка означает, что записанная конфигурация недоступна
type ConfigLoader interface {
	Load(ctx context.Context, providerID string) (domain.NudgeConfig, error)
}

// CapCounter считает использование дневного лимита (fail closed)
type CapCounter interface {
	Usage(ctx context.Context, providerID string, dayStart time.Time, dailyCap int) domain.CapUsage
}

// DecisionRecorder фоновая запись решения в журнал событий
type DecisionRecorder interface {
	Record(ctx context.Context, providerID string, decision domain.NudgeDecision)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics счетчик решений планировщика
type Metrics interface {
	IncSchedulingDecision(operation, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
