package get_day_availability

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	getDayAvailability "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_day_availability"
)

// HourAvailabilityResponse HTTP модель доступности одного часа
type HourAvailabilityResponse struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// parseDateParams разбирает query параметры year, month, day в дату
func parseDateParams(query url.Values) (time.Time, error) {
	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month: %v", err)
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range", month)
	}

	day, err := strconv.Atoi(query.Get("day"))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day: %v", err)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date нормализует переполнение (например, 31 февраля) - отклоняем такие даты
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid calendar date %d-%02d-%02d", year, month, day)
	}

	return date, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
// Клиент ожидает плоский массив часов, разбиение на утро/день он делает сам
func FromUseCaseResponse(resp *getDayAvailability.Response) []HourAvailabilityResponse {
	result := make([]HourAvailabilityResponse, 0, len(resp.Hours))
	for _, item := range resp.Hours {
		result = append(result, HourAvailabilityResponse{
			Hour:      item.Hour,
			Available: item.Available,
		})
	}
	return result
}
