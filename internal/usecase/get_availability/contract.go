package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ProviderResolver переводит providerRef во внутренний ID
type ProviderResolver interface {
	Resolve(ctx context.Context, ref string) string
}

// HoursResolver возвращает недельное расписание провайдера (с fallback)
type HoursResolver interface {
	Resolve(ctx context.Context, providerID string) domain.WeeklyHours
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
