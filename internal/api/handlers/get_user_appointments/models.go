package get_user_appointments

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

// AppointmentResponse HTTP response model одного бронирования
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

// AppointmentListResponse HTTP response model списка бронирований
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	out := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(resp.Appointments)),
	}
	for _, a := range resp.Appointments {
		item := AppointmentResponse{
			ID:         a.ID,
			ProviderID: a.ProviderID,
			CustomerID: a.CustomerID,
			Date:       domain.SlotInstant(a.Date, a.Hour, time.UTC).Format(time.RFC3339),
			Hour:       a.Hour,
			Status:     a.Status,
			CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		}
		if a.CancelledAt != nil {
			cancelledAt := a.CancelledAt.Format(time.RFC3339)
			item.CancelledAt = &cancelledAt
		}
		out.Appointments = append(out.Appointments, item)
	}
	return out
}
