package list_providers

import (
	"context"

	providersModels "github.com/m04kA/SMC-SchedulingService/internal/service/providers/models"
)

type ProvidersService interface {
	List(ctx context.Context) (*providersModels.ProviderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
