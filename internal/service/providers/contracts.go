package providers

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	Create(ctx context.Context, provider *domain.Provider) (*domain.Provider, error)
	List(ctx context.Context) ([]*domain.Provider, error)
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
	Exists(ctx context.Context, id string) (bool, error)
	Disable(ctx context.Context, id string) error
}

// ProviderCache интерфейс кеша списка провайдеров
// Кеш опционален: при nil сервис ходит напрямую в репозиторий
type ProviderCache interface {
	GetList(ctx context.Context) ([]*domain.Provider, error)
	SetList(ctx context.Context, providers []*domain.Provider) error
	Invalidate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
