package get_provider_appointments

import (
	"fmt"
	"net/url"
	"strconv"
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

// AppointmentListResponse HTTP response model расписания провайдера
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// parseQueryParams разбирает опциональный фильтр по дате (year, month, day)
// и флаг include_cancelled
func parseQueryParams(query url.Values) (*time.Time, bool, error) {
	includeCancelled := query.Get("include_cancelled") == "true"

	// Дата опциональна, но если передан хотя бы один параметр - требуются все три
	if query.Get("year") == "" && query.Get("month") == "" && query.Get("day") == "" {
		return nil, includeCancelled, nil
	}

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		return nil, false, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		return nil, false, fmt.Errorf("invalid month: %v", err)
	}
	if month < 1 || month > 12 {
		return nil, false, fmt.Errorf("month %d out of range", month)
	}

	day, err := strconv.Atoi(query.Get("day"))
	if err != nil {
		return nil, false, fmt.Errorf("invalid day: %v", err)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return nil, false, fmt.Errorf("invalid calendar date %d-%02d-%02d", year, month, day)
	}

	return &date, includeCancelled, nil
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
