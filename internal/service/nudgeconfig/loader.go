package nudgeconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage/eventlog"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// Loader читает действующую конфигурацию отправок провайдера из журнала событий
type Loader struct {
	reader EventLogReader
	logger Logger
}

// NewLoader создает новый экземпляр загрузчика конфигурации
func NewLoader(reader EventLogReader, logger Logger) *Loader {
	return &Loader{
		reader: reader,
		logger: logger,
	}
}

// Load возвращает последнюю записанную конфигурацию.
// {22, 8, 25} по умолчанию применяется только если конфигурация ни разу не записывалась.
// Ошибка чтения или битый payload возвращают ErrConfigUnavailable вместе с конфигурацией
// по умолчанию: вызывающий обязан считать решение недоступным (fail closed)
func (l *Loader) Load(ctx context.Context, providerID string) (domain.NudgeConfig, error) {
	event, err := l.reader.LatestByType(ctx, providerID, domain.EventNudgeConfigChanged)
	if errors.Is(err, eventlog.ErrEventNotFound) {
		return domain.DefaultNudgeConfig(), nil
	}
	if err != nil {
		l.logger.Error("Load: failed to read config for provider=%s: %v", providerID, err)
		return domain.DefaultNudgeConfig(), fmt.Errorf("%w: provider=%s: %v", ErrConfigUnavailable, providerID, err)
	}

	cfg, err := FromEvent(event)
	if err != nil {
		l.logger.Error("Load: provider=%s event id=%s: %v", providerID, event.ID, err)
		return domain.DefaultNudgeConfig(), fmt.Errorf("%w: provider=%s event id=%s: %v", ErrConfigUnavailable, providerID, event.ID, err)
	}

	return cfg, nil
}

// FromEvent разбирает payload события nudge_config_changed.
// Отсутствующие поля берутся из конфигурации по умолчанию
func FromEvent(event *domain.Event) (domain.NudgeConfig, error) {
	var payload domain.NudgeConfigPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return domain.NudgeConfig{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	def := domain.DefaultNudgeConfig()
	cfg := domain.NudgeConfig{
		QuietStart: ptr.Deref(payload.QuietStart, def.QuietStart),
		QuietEnd:   ptr.Deref(payload.QuietEnd, def.QuietEnd),
		DailyCap:   ptr.Deref(payload.Cap, def.DailyCap),
		UpdatedAt:  ptr.Ptr(event.LoggedAt),
	}

	if err := cfg.Validate(); err != nil {
		return domain.NudgeConfig{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return cfg, nil
}

// ToPayload сериализует конфигурацию для события nudge_config_changed
func ToPayload(cfg domain.NudgeConfig) (json.RawMessage, error) {
	return json.Marshal(domain.NudgeConfigPayload{
		QuietStart: ptr.Ptr(cfg.QuietStart),
		QuietEnd:   ptr.Ptr(cfg.QuietEnd),
		Cap:        ptr.Ptr(cfg.DailyCap),
	})
}
