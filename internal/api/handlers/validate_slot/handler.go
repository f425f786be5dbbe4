package validate_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	validateSlot "github.com/m04kA/SMC-SchedulingService/internal/usecase/validate_slot"
)

const (
	msgMissingParams = "providerRef и slotISO обязательны"
	msgInvalidSlot   = "некорректный формат slotISO, ожидается ISO-8601"
)

type Handler struct {
	useCase ValidateSlotUseCase
	logger  Logger
}

func NewHandler(useCase ValidateSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/validate
// Query params: providerRef (required), slotISO (required, ISO-8601)
// Отказ по времени или часам возвращается 200 с ok=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	useCaseReq := ToUseCaseRequest(query.Get("providerRef"), query.Get("slotISO"))

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateSlot.ErrMissingParams):
			h.logger.Warn("GET /slots/validate - Missing params: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeMissingParams, msgMissingParams)

		case errors.Is(err, validateSlot.ErrInvalidSlot):
			h.logger.Warn("GET /slots/validate - Invalid slotISO: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidSlot, msgInvalidSlot)

		default:
			h.logger.Error("GET /slots/validate - Failed to validate slot: providerRef=%s, error=%v",
				useCaseReq.ProviderRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/validate - Slot checked: provider=%s, accepted=%t, reason=%s",
		result.ProviderID, result.Verdict.Accepted, result.Verdict.Reason)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
