package disable_provider

import "context"

type ProvidersService interface {
	Disable(ctx context.Context, providerID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
