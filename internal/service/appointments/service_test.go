package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	byID       map[string]*domain.Appointment
	byCustomer []*domain.Appointment
	byProvider []*domain.Appointment

	cancelErr    error
	cancelCalled bool

	lastCustomerStatus *domain.AppointmentStatus
	lastFilter         domain.AppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) GetByCustomerID(_ context.Context, _ string, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	f.lastCustomerStatus = status
	return f.byCustomer, nil
}

func (f *fakeAppointmentRepo) GetByProviderWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.byProvider, nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, _ string) error {
	f.cancelCalled = true
	return f.cancelErr
}

type fakeProviderDirectory struct {
	exists bool
}

func (f *fakeProviderDirectory) Exists(_ context.Context, _ string) (bool, error) {
	return f.exists, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func confirmedAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:         "appt-1",
		ProviderID: "provider-1",
		CustomerID: "customer-1",
		Date:       time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		Hour:       14,
		Status:     domain.StatusConfirmed,
	}
}

func TestGetByID_AccessControl(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[string]*domain.Appointment{"appt-1": confirmedAppointment()}}
	svc := NewService(repo, &fakeProviderDirectory{exists: true}, noopLogger{})

	t.Run("customer has access", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), "appt-1", "customer-1")

		require.NoError(t, err)
		assert.Equal(t, "appt-1", resp.ID)
	})

	t.Run("provider has access", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "appt-1", "provider-1")

		require.NoError(t, err)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "appt-1", "stranger")

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "missing", "customer-1")

		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestGetUserAppointments_StatusFilter(t *testing.T) {
	repo := &fakeAppointmentRepo{byCustomer: []*domain.Appointment{confirmedAppointment()}}
	svc := NewService(repo, &fakeProviderDirectory{exists: true}, noopLogger{})

	t.Run("valid status is passed to repository", func(t *testing.T) {
		resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
			CustomerID: "customer-1",
			Status:     ptr.Ptr("confirmed"),
		})

		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 1)
		require.NotNil(t, repo.lastCustomerStatus)
		assert.Equal(t, domain.StatusConfirmed, *repo.lastCustomerStatus)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
			CustomerID: "customer-1",
			Status:     ptr.Ptr("pending"),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetProviderAppointments(t *testing.T) {
	t.Run("only the provider can read its schedule", func(t *testing.T) {
		svc := NewService(&fakeAppointmentRepo{}, &fakeProviderDirectory{exists: true}, noopLogger{})

		_, err := svc.GetProviderAppointments(context.Background(), &models.GetProviderAppointmentsRequest{
			ProviderID: "provider-1",
			CallerID:   "customer-1",
		})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown provider", func(t *testing.T) {
		svc := NewService(&fakeAppointmentRepo{}, &fakeProviderDirectory{exists: false}, noopLogger{})

		_, err := svc.GetProviderAppointments(context.Background(), &models.GetProviderAppointmentsRequest{
			ProviderID: "ghost",
			CallerID:   "ghost",
		})

		assert.ErrorIs(t, err, ErrProviderNotFound)
	})

	t.Run("date filter is normalized to midnight", func(t *testing.T) {
		repo := &fakeAppointmentRepo{}
		svc := NewService(repo, &fakeProviderDirectory{exists: true}, noopLogger{})

		date := time.Date(2024, 6, 11, 15, 30, 0, 0, time.UTC)
		_, err := svc.GetProviderAppointments(context.Background(), &models.GetProviderAppointmentsRequest{
			ProviderID: "provider-1",
			CallerID:   "provider-1",
			Date:       &date,
		})

		require.NoError(t, err)
		require.NotNil(t, repo.lastFilter.Date)
		assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), *repo.lastFilter.Date)
	})
}

func TestCancel(t *testing.T) {
	t.Run("customer cancels own appointment", func(t *testing.T) {
		repo := &fakeAppointmentRepo{byID: map[string]*domain.Appointment{"appt-1": confirmedAppointment()}}
		svc := NewService(repo, &fakeProviderDirectory{exists: true}, noopLogger{})

		err := svc.Cancel(context.Background(), "appt-1", &models.CancelAppointmentRequest{CallerID: "customer-1"})

		require.NoError(t, err)
		assert.True(t, repo.cancelCalled)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		repo := &fakeAppointmentRepo{byID: map[string]*domain.Appointment{"appt-1": confirmedAppointment()}}
		svc := NewService(repo, &fakeProviderDirectory{exists: true}, noopLogger{})

		err := svc.Cancel(context.Background(), "appt-1", &models.CancelAppointmentRequest{CallerID: "stranger"})

		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.False(t, repo.cancelCalled)
	})

	t.Run("already cancelled", func(t *testing.T) {
		cancelled := confirmedAppointment()
		cancelled.Status = domain.StatusCancelled

		repo := &fakeAppointmentRepo{byID: map[string]*domain.Appointment{"appt-1": cancelled}}
		svc := NewService(repo, &fakeProviderDirectory{exists: true}, noopLogger{})

		err := svc.Cancel(context.Background(), "appt-1", &models.CancelAppointmentRequest{CallerID: "customer-1"})

		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("concurrent cancel race", func(t *testing.T) {
		repo := &fakeAppointmentRepo{
			byID:      map[string]*domain.Appointment{"appt-1": confirmedAppointment()},
			cancelErr: appointmentRepo.ErrAppointmentNotFound,
		}
		svc := NewService(repo, &fakeProviderDirectory{exists: true}, noopLogger{})

		err := svc.Cancel(context.Background(), "appt-1", &models.CancelAppointmentRequest{CallerID: "customer-1"})

		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}
