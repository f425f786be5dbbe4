package provider

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ProviderRepository интерфейс каталога провайдеров
type ProviderRepository interface {
	GetByRef(ctx context.Context, ref string) (*domain.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
