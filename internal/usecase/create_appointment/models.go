package create_appointment

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID string    // ID клиента (аутентифицированный вызывающий)
	ProviderID string    // ID провайдера
	Date       time.Time // Дата слота (без времени)
	Hour       int       // Час слота
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         string    // ID созданного бронирования
	ProviderID string    // ID провайдера
	CustomerID string    // ID клиента
	Date       time.Time // Дата слота
	Hour       int       // Час слота
	Status     string    // Статус бронирования
	CreatedAt  time.Time // Время создания
	UpdatedAt  time.Time // Время обновления
}
