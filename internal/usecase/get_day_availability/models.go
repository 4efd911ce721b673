package get_day_availability

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса доступности на день
type Request struct {
	ProviderID string    // ID провайдера
	Date       time.Time // Дата, на которую запрашивается доступность (без времени)
}

// Response модель ответа: полный список часов дня с признаком доступности
// Ровно одна запись на каждый рабочий час, отсортировано по возрастанию часа.
// Разбиение на утро/день - забота клиента, ядро отдает плоский список
type Response struct {
	ProviderID string
	Date       time.Time
	Hours      domain.DayAvailability
}
