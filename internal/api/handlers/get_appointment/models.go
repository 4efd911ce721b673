package get_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          string  `json:"id"`
	ProviderID  string  `json:"provider_id"`
	CustomerID  string  `json:"customer_id"`
	Date        string  `json:"date"` // ISO instant слота
	Hour        int     `json:"hour"`
	Status      string  `json:"status"`
	CancelledAt *string `json:"cancelled_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	out := &AppointmentResponse{
		ID:         resp.ID,
		ProviderID: resp.ProviderID,
		CustomerID: resp.CustomerID,
		Date:       domain.SlotInstant(resp.Date, resp.Hour, time.UTC).Format(time.RFC3339),
		Hour:       resp.Hour,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
	if resp.CancelledAt != nil {
		cancelledAt := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelledAt
	}
	return out
}
