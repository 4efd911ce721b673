package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	providerCache "github.com/m04kA/SMC-SchedulingService/internal/infra/cache/providers"
	providerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-SchedulingService/internal/service/providers/models"
)

// Service сервис справочника провайдеров
type Service struct {
	providerRepo ProviderRepository
	cache        ProviderCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса провайдеров
// cache может быть nil - тогда все чтения идут напрямую в репозиторий
func NewService(
	providerRepo ProviderRepository,
	cache ProviderCache,
	logger Logger,
) *Service {
	return &Service{
		providerRepo: providerRepo,
		cache:        cache,
		logger:       logger,
	}
}

// List возвращает список активных провайдеров
// Сначала проверяет кеш; при промахе или недоступности кеша читает из базы
// и прогревает кеш. Ошибки кеша не фатальны - деградируем до чтения из базы
func (s *Service) List(ctx context.Context) (*models.ProviderListResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.GetList(ctx)
		if err == nil {
			s.logger.Info("List: served %d providers from cache", len(cached))
			return models.FromDomainProviderList(cached), nil
		}
		if !errors.Is(err, providerCache.ErrCacheMiss) {
			s.logger.Warn("List: cache read failed, falling back to repository: %v", err)
		}
	}

	providers, err := s.providerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, providers); err != nil {
			s.logger.Warn("List: failed to warm cache: %v", err)
		}
	}

	s.logger.Info("List: successfully fetched %d providers", len(providers))
	return models.FromDomainProviderList(providers), nil
}

// Exists проверяет, что активный провайдер зарегистрирован
// Используется координатором бронирования перед проверкой доступности
func (s *Service) Exists(ctx context.Context, providerID string) (bool, error) {
	exists, err := s.providerRepo.Exists(ctx, providerID)
	if err != nil {
		s.logger.Error("Exists: repository error for provider=%s: %v", providerID, err)
		return false, fmt.Errorf("%w: Exists - repository error: %v", ErrInternal, err)
	}
	return exists, nil
}

// GetByID возвращает провайдера по ID
func (s *Service) GetByID(ctx context.Context, providerID string) (*models.ProviderResponse, error) {
	provider, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("GetByID: provider=%s not found", providerID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("GetByID: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProvider(provider), nil
}

// Register регистрирует нового провайдера (онбординг)
func (s *Service) Register(ctx context.Context, req *models.RegisterProviderRequest) (*models.ProviderResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Register: empty provider name")
		return nil, fmt.Errorf("%w: provider name is required", ErrInvalidInput)
	}

	created, err := s.providerRepo.Create(ctx, &domain.Provider{
		Name:      strings.TrimSpace(req.Name),
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx)

	s.logger.Info("Register: successfully registered provider id=%s", created.ID)
	return models.FromDomainProvider(created), nil
}

// Disable выводит провайдера из ротации (soft-disable)
// Уже созданные бронирования остаются, новые для этого провайдера невозможны
func (s *Service) Disable(ctx context.Context, providerID string) error {
	if err := s.providerRepo.Disable(ctx, providerID); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("Disable: provider=%s not found", providerID)
			return ErrProviderNotFound
		}
		s.logger.Error("Disable: repository error for provider=%s: %v", providerID, err)
		return fmt.Errorf("%w: Disable - repository error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx)

	s.logger.Info("Disable: successfully disabled provider id=%s", providerID)
	return nil
}

// invalidateCache сбрасывает кеш списка, ошибки кеша только логируются
func (s *Service) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("invalidateCache: %v", err)
	}
}
