package providers

import "errors"

var (
	// ErrCacheMiss возвращается, когда записи в кеше нет
	ErrCacheMiss = errors.New("providers.cache: cache miss")

	// ErrCacheUnavailable возвращается при ошибках работы с Redis
	ErrCacheUnavailable = errors.New("providers.cache: cache unavailable")
)
