package ratecap

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// EventLogReader чтение журнала событий
type EventLogReader interface {
	CountSince(ctx context.Context, providerID string, types []domain.EventType, since time.Time) (int, error)
}

// Metrics счетчик неудачных чтений журнала
type Metrics interface {
	IncCapReadFailure()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
