package get_provider

import (
	"context"

	providersModels "github.com/m04kA/SMC-SchedulingService/internal/service/providers/models"
)

type ProvidersService interface {
	GetByID(ctx context.Context, providerID string) (*providersModels.ProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
