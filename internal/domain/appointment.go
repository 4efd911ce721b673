package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a committed reservation of a single slot
// Слот однозначно определяется тройкой (provider_id, date, hour) - на неё действует
// инвариант: не более одного подтвержденного бронирования
type Appointment struct {
	ID         string
	ProviderID string
	CustomerID string
	Date       time.Time // Дата слота (время обнулено)
	Hour       int       // Час слота в диапазоне рабочих часов
	Status     AppointmentStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the appointment counts towards slot occupancy
// Отмененное бронирование освобождает слот и допускает повторное бронирование
func (a *Appointment) OccupiesSlot() bool {
	return a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
// Единственный допустимый переход: confirmed -> cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// AppointmentsFilter фильтр для выборки бронирований провайдера
type AppointmentsFilter struct {
	ProviderID       string             // Обязательный параметр
	Date             *time.Time         // Фильтр по дате (опционально, если nil - без ограничения)
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отмененные бронирования
}
