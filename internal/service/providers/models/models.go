package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ProviderResponse модель провайдера для ответа сервиса
type ProviderResponse struct {
	ID        string
	Name      string
	AvatarURL string
	CreatedAt time.Time
}

// ProviderListResponse список провайдеров
type ProviderListResponse struct {
	Providers []ProviderResponse
}

// RegisterProviderRequest запрос на регистрацию провайдера
type RegisterProviderRequest struct {
	Name      string
	AvatarURL string
}

// FromDomainProvider конвертирует доменную модель в ответ сервиса
func FromDomainProvider(p *domain.Provider) *ProviderResponse {
	return &ProviderResponse{
		ID:        p.ID,
		Name:      p.Name,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
	}
}

// FromDomainProviderList конвертирует список доменных моделей в ответ сервиса
func FromDomainProviderList(providers []*domain.Provider) *ProviderListResponse {
	result := make([]ProviderResponse, 0, len(providers))
	for _, p := range providers {
		result = append(result, *FromDomainProvider(p))
	}
	return &ProviderListResponse{Providers: result}
}
