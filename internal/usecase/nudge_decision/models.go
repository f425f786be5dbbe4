package nudge_decision

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// Request модель запроса решения об отправке
type Request struct {
	ProviderRef string
}

// Response модель ответа с решением
type Response struct {
	ProviderID string
	Decision   domain.NudgeDecision
}
