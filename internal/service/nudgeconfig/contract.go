package nudgeconfig

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// EventLogReader чтение последнего события заданного типа
type EventLogReader interface {
	LatestByType(ctx context.Context, providerID string, eventType domain.EventType) (*domain.Event, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
