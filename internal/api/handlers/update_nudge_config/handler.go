package update_nudge_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	updateNudgeConfig "github.com/m04kA/SMC-SchedulingService/internal/usecase/update_nudge_config"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingParams      = "providerRef, quiet_start, quiet_end и cap обязательны"
	msgInvalidConfig      = "часы должны быть в диапазоне 0-23, cap не может быть отрицательным"
)

type Handler struct {
	useCase UpdateNudgeConfigUseCase
	logger  Logger
}

func NewHandler(useCase UpdateNudgeConfigUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/nudges/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req UpdateNudgeConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /nudges/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidBody, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, updateNudgeConfig.ErrMissingParams):
			h.logger.Warn("PUT /nudges/config - Missing params: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeMissingParams, msgMissingParams)

		case errors.Is(err, updateNudgeConfig.ErrInvalidConfig):
			h.logger.Warn("PUT /nudges/config - Invalid data: providerRef=%s, error=%v", req.ProviderRef, err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidConfig, msgInvalidConfig)

		default:
			h.logger.Error("PUT /nudges/config - Failed to update config: providerRef=%s, error=%v", req.ProviderRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /nudges/config - Config updated successfully: provider=%s, event_id=%s",
		result.ProviderID, result.EventID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
