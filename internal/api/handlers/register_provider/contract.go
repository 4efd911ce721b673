package register_provider

import (
	"context"

	providersModels "github.com/m04kA/SMC-SchedulingService/internal/service/providers/models"
)

type ProvidersService interface {
	Register(ctx context.Context, req *providersModels.RegisterProviderRequest) (*providersModels.ProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
