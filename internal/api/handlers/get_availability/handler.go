package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_availability"
)

const (
	msgMissingProviderRef = "providerRef обязателен"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: providerRef (required), days (optional, default 14, clamped to [1,30])
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Формируем запрос к use case
	useCaseReq := ToUseCaseRequest(query.Get("providerRef"), query.Get("days"))

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrMissingParams):
			h.logger.Warn("GET /availability - Missing providerRef")
			handlers.RespondBadRequest(w, handlers.CodeMissingParams, msgMissingProviderRef)

		default:
			h.logger.Error("GET /availability - Failed to get availability: providerRef=%s, error=%v",
				useCaseReq.ProviderRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability retrieved: provider=%s, days=%d, slots=%d",
		result.ProviderID, len(result.Days), result.SlotCount())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
