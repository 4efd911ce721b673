package get_provider_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

const (
	msgInvalidDateParams = "некорректные параметры даты, ожидаются year, month, day"
	msgProviderNotFound  = "провайдер не найден"
	msgAccessDenied      = "расписание доступно только самому провайдеру"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/appointments?year&month&day&include_cancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-User-ID")
		return
	}

	providerID := mux.Vars(r)["providerId"]

	date, includeCancelled, err := parseQueryParams(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /providers/%s/appointments - Invalid date params: %v", providerID, err)
		handlers.RespondBadRequest(w, msgInvalidDateParams)
		return
	}

	result, err := h.service.GetProviderAppointments(r.Context(), &models.GetProviderAppointmentsRequest{
		ProviderID:       providerID,
		CallerID:         callerID,
		Date:             date,
		IncludeCancelled: includeCancelled,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /providers/%s/appointments - Access denied for caller=%s", providerID, callerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrProviderNotFound):
			h.logger.Warn("GET /providers/%s/appointments - Provider not found", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		default:
			h.logger.Error("GET /providers/%s/appointments - Failed: %v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
