package update_nudge_config

import (
	nudgeDecisionHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/nudge_decision"
	updateNudgeConfig "github.com/m04kA/SMC-SchedulingService/internal/usecase/update_nudge_config"
)

// UpdateNudgeConfigRequest тело запроса PUT /nudges/config
type UpdateNudgeConfigRequest struct {
	ProviderRef string `json:"providerRef"`
	QuietStart  *int   `json:"quiet_start"`
	QuietEnd    *int   `json:"quiet_end"`
	Cap         *int   `json:"cap"`
}

// UpdateNudgeConfigResponse HTTP response model
type UpdateNudgeConfigResponse struct {
	OK     bool                                `json:"ok"`
	Config nudgeDecisionHandler.ConfigResponse `json:"config"`
}

// ToUseCaseRequest конвертирует тело запроса в запрос use case
func (r *UpdateNudgeConfigRequest) ToUseCaseRequest() *updateNudgeConfig.Request {
	return &updateNudgeConfig.Request{
		ProviderRef: r.ProviderRef,
		QuietStart:  r.QuietStart,
		QuietEnd:    r.QuietEnd,
		Cap:         r.Cap,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateNudgeConfig.Response) *UpdateNudgeConfigResponse {
	return &UpdateNudgeConfigResponse{
		OK:     true,
		Config: nudgeDecisionHandler.NewConfigResponse(resp.Config),
	}
}
