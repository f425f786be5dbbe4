package update_nudge_config

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ProviderResolver переводит providerRef во внутренний ID
type ProviderResolver interface {
	Resolve(ctx context.Context, ref string) string
}

// EventLogWriter запись в журнал событий
type EventLogWriter interface {
	Append(ctx context.Context, event domain.Event) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
