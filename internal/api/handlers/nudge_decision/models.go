package nudge_decision

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	nudgeDecision "github.com/m04kA/SMC-SchedulingService/internal/usecase/nudge_decision"
)

// DecisionResponse HTTP response model
type DecisionResponse struct {
	Allowed   bool           `json:"allowed"`
	IsQuiet   bool           `json:"is_quiet"`
	Remaining int            `json:"remaining"`
	SentToday int            `json:"sent_today"`
	Config    ConfigResponse `json:"config"`
}

// ConfigResponse действующая конфигурация отправок
// UpdatedTS null, если применяется конфигурация по умолчанию
type ConfigResponse struct {
	QuietStart int     `json:"quiet_start"`
	QuietEnd   int     `json:"quiet_end"`
	Cap        int     `json:"cap"`
	UpdatedTS  *string `json:"updated_ts"`
}

// NewConfigResponse конвертирует доменную конфигурацию в HTTP модель
func NewConfigResponse(cfg domain.NudgeConfig) ConfigResponse {
	resp := ConfigResponse{
		QuietStart: cfg.QuietStart,
		QuietEnd:   cfg.QuietEnd,
		Cap:        cfg.DailyCap,
	}
	if cfg.UpdatedAt != nil {
		ts := cfg.UpdatedAt.UTC().Format(time.RFC3339)
		resp.UpdatedTS = &ts
	}
	return resp
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *nudgeDecision.Response) *DecisionResponse {
	d := resp.Decision
	return &DecisionResponse{
		Allowed:   d.Allowed,
		IsQuiet:   d.IsQuiet,
		Remaining: d.Remaining,
		SentToday: d.SentToday,
		Config:    NewConfigResponse(d.Config),
	}
}
