package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AppointmentResponse модель бронирования для ответа сервиса
type AppointmentResponse struct {
	ID          string
	ProviderID  string
	CustomerID  string
	Date        time.Time
	Hour        int
	Status      string
	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AppointmentListResponse список бронирований
type AppointmentListResponse struct {
	Appointments []AppointmentResponse
}

// GetUserAppointmentsRequest запрос истории бронирований клиента
type GetUserAppointmentsRequest struct {
	CustomerID string
	Status     *string // Опциональный фильтр по статусу
}

// GetProviderAppointmentsRequest запрос расписания провайдера
type GetProviderAppointmentsRequest struct {
	ProviderID       string
	CallerID         string     // ID вызывающего (из заголовка аутентификации)
	Date             *time.Time // Опциональный фильтр по дате
	IncludeCancelled bool
}

// CancelAppointmentRequest запрос на отмену бронирования
type CancelAppointmentRequest struct {
	CallerID string
}

// ToDomainAppointmentStatus валидирует и конвертирует строковый статус
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, bool) {
	switch domain.AppointmentStatus(status) {
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, true
	case domain.StatusCancelled:
		return domain.StatusCancelled, true
	default:
		return "", false
	}
}

// FromDomainAppointment конвертирует доменную модель в ответ сервиса
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          a.ID,
		ProviderID:  a.ProviderID,
		CustomerID:  a.CustomerID,
		Date:        a.Date,
		Hour:        a.Hour,
		Status:      string(a.Status),
		CancelledAt: a.CancelledAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных моделей в ответ сервиса
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: result}
}
