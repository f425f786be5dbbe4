package nudge_decision

import (
	"context"

	nudgeDecision "github.com/m04kA/SMC-SchedulingService/internal/usecase/nudge_decision"
)

type NudgeDecisionUseCase interface {
	Execute(ctx context.Context, req *nudgeDecision.Request) (*nudgeDecision.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
