package get_day_availability

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// buildDayAvailability строит проекцию доступности на день
// Час недоступен, если:
// - дата в прошлом (прошедший день целиком недоступен),
// - дата сегодня и час не позже текущего (бронирование в прошлое/настоящее запрещено),
// - час занят подтвержденным бронированием
func buildDayAvailability(
	hours domain.BusinessHours,
	date time.Time,
	now time.Time,
	occupied map[int]bool,
) domain.DayAvailability {
	pastDate := domain.IsDateInPast(date, now)
	today := domain.IsSameDay(date, now)

	result := make(domain.DayAvailability, 0, hours.EndHour-hours.StartHour+1)
	for _, hour := range hours.Hours() {
		available := !pastDate &&
			!(today && hour <= now.Hour()) &&
			!occupied[hour]

		result = append(result, domain.HourAvailability{
			Hour:      hour,
			Available: available,
		})
	}

	return result
}

// occupiedHours строит множество занятых часов из списка бронирований
// Отмененные бронирования слот не занимают
func occupiedHours(appointments []*domain.Appointment) map[int]bool {
	occupied := make(map[int]bool, len(appointments))
	for _, appt := range appointments {
		if appt.OccupiesSlot() {
			occupied[appt.Hour] = true
		}
	}
	return occupied
}
