package get_provider

import (
	"time"

	providersModels "github.com/m04kA/SMC-SchedulingService/internal/service/providers/models"
)

// ProviderResponse HTTP модель провайдера
type ProviderResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	CreatedAt string `json:"created_at"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP модель
func FromServiceResponse(resp *providersModels.ProviderResponse) *ProviderResponse {
	return &ProviderResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		AvatarURL: resp.AvatarURL,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
