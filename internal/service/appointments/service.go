package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

// Service сервис для чтения и отмены бронирований
// Создание бронирований идет через отдельный usecase с транзакционной проверкой слота
type Service struct {
	appointmentRepo AppointmentRepository
	providers       ProviderDirectory
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	appointmentRepo AppointmentRepository,
	providers ProviderDirectory,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		providers:       providers,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Доступ имеют только клиент, создавший бронирование, и сам провайдер
func (s *Service) GetByID(ctx context.Context, id string, callerID string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for caller=%s", id, callerID)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkCallerAccess(appt, callerID); err != nil {
		s.logger.Warn("GetByID: access denied for caller=%s to appointment id=%s", callerID, id)
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// GetUserAppointments получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for customer=%s", req.CustomerID)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, ok := models.ToDomainAppointmentStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetUserAppointments: invalid status=%s for customer=%s", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for customer=%s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for customer=%s",
		len(appointments), req.CustomerID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetProviderAppointments получает расписание провайдера
// Доступно только самому провайдеру (вызывающий должен совпадать с providerID)
func (s *Service) GetProviderAppointments(ctx context.Context, req *models.GetProviderAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetProviderAppointments: fetching appointments for provider=%s, caller=%s",
		req.ProviderID, req.CallerID)

	if req.CallerID != req.ProviderID {
		s.logger.Warn("GetProviderAppointments: access denied for caller=%s to provider=%s schedule",
			req.CallerID, req.ProviderID)
		return nil, ErrAccessDenied
	}

	exists, err := s.providers.Exists(ctx, req.ProviderID)
	if err != nil {
		s.logger.Error("GetProviderAppointments: directory error for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderAppointments - directory error: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("GetProviderAppointments: provider=%s not found", req.ProviderID)
		return nil, ErrProviderNotFound
	}

	filter := domain.AppointmentsFilter{
		ProviderID:       req.ProviderID,
		IncludeCancelled: req.IncludeCancelled,
	}
	if req.Date != nil {
		date := domain.DateOnly(*req.Date)
		filter.Date = &date
	}

	appointments, err := s.appointmentRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProviderAppointments: repository error for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProviderAppointments: successfully fetched %d appointments for provider=%s",
		len(appointments), req.ProviderID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет бронирование
// Отменить может клиент, создавший бронирование, или сам провайдер.
// Отмененное бронирование освобождает свой слот для повторного бронирования
func (s *Service) Cancel(ctx context.Context, appointmentID string, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%s by caller=%s", appointmentID, req.CallerID)

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkCallerAccess(appt, req.CallerID); err != nil {
		s.logger.Warn("Cancel: access denied for caller=%s to appointment id=%s", req.CallerID, appointmentID)
		return err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			// Статус успел измениться между чтением и отменой
			s.logger.Warn("Cancel: appointment id=%s already cancelled concurrently", appointmentID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", appointmentID)
	return nil
}

// checkCallerAccess проверяет, что вызывающий - клиент бронирования или его провайдер
func (s *Service) checkCallerAccess(appt *domain.Appointment, callerID string) error {
	if appt.CustomerID == callerID || appt.ProviderID == callerID {
		return nil
	}
	return ErrAccessDenied
}
