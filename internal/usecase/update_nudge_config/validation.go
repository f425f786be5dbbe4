package update_nudge_config

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest проверяет наличие полей и диапазоны значений
func validateRequest(req *Request) (domain.NudgeConfig, error) {
	if strings.TrimSpace(req.ProviderRef) == "" {
		return domain.NudgeConfig{}, fmt.Errorf("%w: providerRef is required", ErrMissingParams)
	}
	if req.QuietStart == nil || req.QuietEnd == nil || req.Cap == nil {
		return domain.NudgeConfig{}, fmt.Errorf("%w: quiet_start, quiet_end and cap are required", ErrMissingParams)
	}

	cfg := domain.NudgeConfig{
		QuietStart: *req.QuietStart,
		QuietEnd:   *req.QuietEnd,
		DailyCap:   *req.Cap,
	}
	if err := cfg.Validate(); err != nil {
		return domain.NudgeConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}
