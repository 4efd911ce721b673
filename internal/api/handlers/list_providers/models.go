package list_providers

import (
	providersModels "github.com/m04kA/SMC-SchedulingService/internal/service/providers/models"
)

// ProviderResponse HTTP модель провайдера
type ProviderResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP модель
// Клиент ожидает плоский массив провайдеров
func FromServiceResponse(resp *providersModels.ProviderListResponse) []ProviderResponse {
	result := make([]ProviderResponse, 0, len(resp.Providers))
	for _, p := range resp.Providers {
		result = append(result, ProviderResponse{
			ID:        p.ID,
			Name:      p.Name,
			AvatarURL: p.AvatarURL,
		})
	}
	return result
}
