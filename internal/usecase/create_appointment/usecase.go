package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

// UseCase use case создания бронирования (координатор бронирования)
//
// Гарантия "не более одного бронирования на слот" обеспечивается двумя уровнями:
//  1. Проверка занятости и вставка выполняются в одной сериализуемой транзакции
//     с блокировкой дня (FOR UPDATE) - все писатели одного (provider, date)
//     проходят через одну точку сериализации.
//  2. Частичный уникальный индекс по (provider_id, date, hour) WHERE status='confirmed' -
//     условная вставка атомарна на уровне базы, наивный read-then-write исключен
//     даже при ошибке в коде проверки.
//
// Из двух конкурентных запросов на один слот ровно один получает успех,
// второй - ErrSlotConflict
type UseCase struct {
	appointmentRepo AppointmentRepository
	providers       ProviderDirectory
	businessHours   domain.BusinessHours
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	providers ProviderDirectory,
	businessHours domain.BusinessHours,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		providers:       providers,
		businessHours:   businessHours,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%s, provider=%s, date=%s, hour=%d",
		req.CustomerID, req.ProviderID, req.Date.Format(domain.DateFormat), req.Hour)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование провайдера
	exists, err := uc.providers.Exists(ctx, req.ProviderID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to check provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to check provider: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("CreateAppointment: provider=%s not found", req.ProviderID)
		return nil, ErrUnknownProvider
	}

	// 4. Проверяем слот: рабочие часы и что момент строго в будущем
	if err := validateSlot(req, uc.businessHours, now); err != nil {
		uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Проверка занятости и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем бронирования дня с блокировкой (FOR UPDATE)
		filter := domain.AppointmentsFilter{
			ProviderID:       req.ProviderID,
			Date:             &date,
			IncludeCancelled: false,
		}

		appointments, err := uc.appointmentRepo.GetByProviderWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.2. Проверяем занятость часа
		if isHourOccupied(appointments, req.Hour) {
			uc.logger.Warn("CreateAppointment: slot taken, provider=%s, date=%s, hour=%d",
				req.ProviderID, date.Format(domain.DateFormat), req.Hour)
			return ErrSlotConflict
		}

		// 5.3. Создаем подтвержденное бронирование
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ProviderID: req.ProviderID,
			CustomerID: req.CustomerID,
			Date:       date,
			Hour:       req.Hour,
			Status:     domain.StatusConfirmed,
		})
		if err != nil {
			// Уникальный индекс сработал на гонке, которую не поймала проверка выше
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: unique index rejected insert, provider=%s, date=%s, hour=%d",
					req.ProviderID, date.Format(domain.DateFormat), req.Hour)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации после исчерпания повторов менеджера транзакций
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateAppointment: serialization retries exhausted: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return &Response{
		ID:         result.ID,
		ProviderID: result.ProviderID,
		CustomerID: result.CustomerID,
		Date:       result.Date,
		Hour:       result.Hour,
		Status:     string(result.Status),
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
