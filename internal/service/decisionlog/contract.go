package decisionlog

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// EventLogWriter запись в журнал событий
type EventLogWriter interface {
	Append(ctx context.Context, event domain.Event) error
}

// Metrics счетчик результатов записи в журнал
type Metrics interface {
	IncEventLogAppend(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
