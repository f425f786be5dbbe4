package hours

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/integrations/hoursservice"
)

// HoursServiceClient интерфейс клиента сервиса рабочих часов
type HoursServiceClient interface {
	GetWeeklyHours(ctx context.Context, providerID string) (*hoursservice.WeeklyHours, error)
}

// Metrics счетчики подстановки расписания по умолчанию
type Metrics interface {
	IncHoursFallback(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
