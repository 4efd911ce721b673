package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID == "" {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	if req.ProviderID == "" {
		return fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateSlot проверяет, что слот входит в рабочие часы и строго в будущем
func validateSlot(req *Request, hours domain.BusinessHours, now time.Time) error {
	if !hours.Contains(req.Hour) {
		return fmt.Errorf("%w: hour %d is outside range %d..%d",
			ErrInvalidSlot, req.Hour, hours.StartHour, hours.EndHour)
	}

	if domain.IsSlotInPast(req.Date, req.Hour, now) {
		return ErrPastSlot
	}

	return nil
}

// isHourOccupied проверяет, занят ли час занимающим слот бронированием
func isHourOccupied(appointments []*domain.Appointment, hour int) bool {
	for _, appt := range appointments {
		if appt.Hour == hour && appt.OccupiesSlot() {
			return true
		}
	}
	return false
}
