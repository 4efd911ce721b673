package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
// date - ISO instant выбранного слота: дата + час, минуты и секунды обнулены
type CreateAppointmentRequest struct {
	ProviderID string `json:"provider_id"`
	Date       string `json:"date"` // "2024-06-10T14:00:00Z"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         string `json:"id"`
	ProviderID string `json:"provider_id"`
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"` // ISO instant слота
	Hour       int    `json:"hour"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// customerID приходит из контекста аутентификации, не из тела запроса.
// Момент из тела может нести любое смещение - дата и час слота берутся
// после приведения к таймзоне сервиса, той же, в которой считается доступность
func (r *CreateAppointmentRequest) ToUseCaseRequest(customerID string, loc *time.Location) (*createAppointment.Request, error) {
	instant, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	if loc == nil {
		loc = time.UTC
	}
	local := instant.In(loc)

	if local.Minute() != 0 || local.Second() != 0 || local.Nanosecond() != 0 {
		return nil, fmt.Errorf("date must be truncated to the hour")
	}

	return &createAppointment.Request{
		CustomerID: customerID,
		ProviderID: r.ProviderID,
		Date:       domain.DateOnly(local),
		Hour:       local.Hour(),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID,
		ProviderID: resp.ProviderID,
		CustomerID: resp.CustomerID,
		Date:       domain.SlotInstant(resp.Date, resp.Hour, resp.Date.Location()).Format(time.RFC3339),
		Hour:       resp.Hour,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
