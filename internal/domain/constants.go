package domain

// Default business hours range (inclusive)
const (
	DefaultBusinessDayStart = 8
	DefaultBusinessDayEnd   = 17
)

// Business validation constants
const (
	MinBusinessHour = 0
	MaxBusinessHour = 23
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses список статусов, при которых бронирование занимает свой слот
// Используется при подсчете занятости и в проверке доступности
var OccupyingStatuses = []AppointmentStatus{
	StatusConfirmed,
}
