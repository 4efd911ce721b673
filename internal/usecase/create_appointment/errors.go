package create_appointment

import "errors"

var (
	// ErrUnknownProvider возвращается, когда провайдер не зарегистрирован
	ErrUnknownProvider = errors.New("create_appointment: unknown provider")

	// ErrInvalidSlot возвращается, когда час вне диапазона рабочих часов
	ErrInvalidSlot = errors.New("create_appointment: hour is outside business hours")

	// ErrPastSlot возвращается, когда слот уже прошел на момент обработки запроса
	ErrPastSlot = errors.New("create_appointment: slot is in the past")

	// ErrSlotConflict возвращается, когда слот уже занят подтвержденным бронированием
	// Ожидаемая ошибка при конкурентных запросах на один слот - клиенту
	// предлагается выбрать другое время
	ErrSlotConflict = errors.New("create_appointment: slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrUnavailable возвращается, когда хранилище недоступно после исчерпания повторов
	ErrUnavailable = errors.New("create_appointment: storage temporarily unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
