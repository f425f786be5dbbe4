package update_nudge_config

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// Request модель запроса на изменение конфигурации отправок.
// Все поля обязательны, nil означает "не передано"
type Request struct {
	ProviderRef string
	QuietStart  *int
	QuietEnd    *int
	Cap         *int
}

// Response модель ответа с сохраненной конфигурацией
type Response struct {
	ProviderID string
	EventID    string
	Config     domain.NudgeConfig
}
