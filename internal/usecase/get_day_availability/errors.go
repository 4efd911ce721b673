package get_day_availability

import "errors"

var (
	// ErrUnknownProvider возвращается, когда провайдер не зарегистрирован
	ErrUnknownProvider = errors.New("get_day_availability: unknown provider")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_availability: internal error")
)
