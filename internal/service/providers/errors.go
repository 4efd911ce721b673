package providers

import "errors"

var (
	// ErrProviderNotFound возвращается, когда провайдер не зарегистрирован
	ErrProviderNotFound = errors.New("provider not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("providers service: internal error")
)
