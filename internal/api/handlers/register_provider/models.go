package register_provider

import (
	"time"

	providersModels "github.com/m04kA/SMC-SchedulingService/internal/service/providers/models"
)

// RegisterProviderRequest HTTP request model онбординга провайдера
type RegisterProviderRequest struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ProviderResponse HTTP response model
type ProviderResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	CreatedAt string `json:"created_at"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterProviderRequest) ToServiceRequest() *providersModels.RegisterProviderRequest {
	return &providersModels.RegisterProviderRequest{
		Name:      r.Name,
		AvatarURL: r.AvatarURL,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *providersModels.ProviderResponse) *ProviderResponse {
	return &ProviderResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		AvatarURL: resp.AvatarURL,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
