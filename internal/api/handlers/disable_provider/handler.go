package disable_provider

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/providers"
)

const (
	msgProviderNotFound = "провайдер не найден"
	msgAccessDenied     = "провайдер может отключить только самого себя"
)

type Handler struct {
	service ProvidersService
	logger  Logger
}

func NewHandler(service ProvidersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/providers/{providerId}/disable
// Вывод из ротации: провайдер исчезает из списка и перестает принимать
// новые бронирования, уже созданные остаются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-User-ID")
		return
	}

	providerID := mux.Vars(r)["providerId"]

	if callerID != providerID {
		h.logger.Warn("PATCH /providers/%s/disable - Access denied for caller=%s", providerID, callerID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	if err := h.service.Disable(r.Context(), providerID); err != nil {
		switch {
		case errors.Is(err, providers.ErrProviderNotFound):
			h.logger.Warn("PATCH /providers/%s/disable - Provider not found", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		default:
			h.logger.Error("PATCH /providers/%s/disable - Failed: %v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}
