package domain

import "time"

// Чистые календарные функции: границы дня, сравнение дат, момент начала слота

// DateOnly обнуляет время, оставляя только календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
// Сравниваются календарные даты, а не моменты: полночь одного и того же дня
// в разных таймзонах - это один день
func IsDateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()

	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// SlotInstant возвращает момент начала слота: дата + час, минуты и секунды обнулены
func SlotInstant(date time.Time, hour int, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, loc)
}

// IsSlotInPast проверяет, что слот уже прошел или начинается прямо сейчас
// Бронирование допускается только для слотов строго в будущем
func IsSlotInPast(date time.Time, hour int, now time.Time) bool {
	instant := SlotInstant(date, hour, now.Location())
	return !instant.After(now)
}
