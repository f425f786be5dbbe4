package nudge_decision

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	nudgeDecision "github.com/m04kA/SMC-SchedulingService/internal/usecase/nudge_decision"
)

const (
	msgMissingProviderRef = "providerRef обязателен"
)

type Handler struct {
	useCase NudgeDecisionUseCase
	logger  Logger
}

func NewHandler(useCase NudgeDecisionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/nudges/decision
// Query params: providerRef (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &nudgeDecision.Request{ProviderRef: r.URL.Query().Get("providerRef")}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, nudgeDecision.ErrMissingParams):
			h.logger.Warn("GET /nudges/decision - Missing providerRef")
			handlers.RespondBadRequest(w, handlers.CodeMissingParams, msgMissingProviderRef)

		default:
			h.logger.Error("GET /nudges/decision - Failed to decide: providerRef=%s, error=%v", req.ProviderRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /nudges/decision - Decision made: provider=%s, allowed=%t",
		result.ProviderID, result.Decision.Allowed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
