package update_nudge_config

import (
	"context"

	updateNudgeConfig "github.com/m04kA/SMC-SchedulingService/internal/usecase/update_nudge_config"
)

type UpdateNudgeConfigUseCase interface {
	Execute(ctx context.Context, req *updateNudgeConfig.Request) (*updateNudgeConfig.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
