package get_day_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getDayAvailability "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_day_availability"
)

const (
	msgInvalidDateParams = "некорректные параметры даты, ожидаются year, month, day"
	msgProviderNotFound  = "провайдер не найден"
)

type Handler struct {
	useCase GetDayAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetDayAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/day-availability?year&month&day
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	date, err := parseDateParams(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /providers/%s/day-availability - Invalid date params: %v", providerID, err)
		handlers.RespondBadRequest(w, msgInvalidDateParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDayAvailability.Request{
		ProviderID: providerID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayAvailability.ErrUnknownProvider):
			h.logger.Warn("GET /providers/%s/day-availability - Provider not found", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, getDayAvailability.ErrInvalidInput):
			h.logger.Warn("GET /providers/%s/day-availability - Invalid input: %v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidDateParams)

		default:
			h.logger.Error("GET /providers/%s/day-availability - Failed: %v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
