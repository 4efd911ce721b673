package get_day_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// UseCase use case расчета доступности слотов провайдера на день
// Чистое чтение поверх Slot Store: не создает и не блокирует записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	providers       ProviderDirectory
	businessHours   domain.BusinessHours
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	providers ProviderDirectory,
	businessHours domain.BusinessHours,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		providers:       providers,
		businessHours:   businessHours,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case расчета доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayAvailability: provider=%s, date=%s",
		req.ProviderID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование провайдера
	exists, err := uc.providers.Exists(ctx, req.ProviderID)
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to check provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to check provider: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("GetDayAvailability: provider=%s not found", req.ProviderID)
		return nil, ErrUnknownProvider
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()
	date := domain.DateOnly(req.Date)

	// 4. Для прошедшей даты все часы недоступны - в Slot Store не ходим,
	// клиент единообразно рендерит такой день
	if domain.IsDateInPast(date, now) {
		uc.logger.Info("GetDayAvailability: date %s is in the past, all hours unavailable",
			date.Format(domain.DateFormat))
		return &Response{
			ProviderID: req.ProviderID,
			Date:       date,
			Hours:      buildDayAvailability(uc.businessHours, date, now, nil),
		}, nil
	}

	// 5. Получаем занимающие слот бронирования на эту дату
	filter := domain.AppointmentsFilter{
		ProviderID:       req.ProviderID,
		Date:             &date,
		IncludeCancelled: false,
	}

	appointments, err := uc.appointmentRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Строим проекцию доступности
	hours := buildDayAvailability(uc.businessHours, date, now, occupiedHours(appointments))

	uc.logger.Info("GetDayAvailability: built %d hour entries (%d available) for provider=%s, date=%s",
		len(hours), len(hours.AvailableHours()), req.ProviderID, date.Format(domain.DateFormat))

	return &Response{
		ProviderID: req.ProviderID,
		Date:       date,
		Hours:      hours,
	}, nil
}
