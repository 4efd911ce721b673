package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
)

// fakeAppointmentRepo потокобезопасное in-memory хранилище бронирований
// Уникальность подтвержденного слота проверяется при вставке, как частичный
// уникальный индекс в базе
type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments map[string]*domain.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[string]*domain.Appointment)}
}

func slotKey(providerID string, date time.Time, hour int) string {
	return fmt.Sprintf("%s|%s|%d", providerID, date.Format(domain.DateFormat), hour)
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := slotKey(appt.ProviderID, appt.Date, appt.Hour)
	if existing, ok := f.appointments[key]; ok && existing.OccupiesSlot() {
		return nil, appointmentRepo.ErrSlotTaken
	}

	stored := *appt
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.appointments[key] = &stored

	return &stored, nil
}

func (f *fakeAppointmentRepo) GetByProviderWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if appt.ProviderID != filter.ProviderID {
			continue
		}
		if filter.Date != nil && !domain.IsSameDay(appt.Date, *filter.Date) {
			continue
		}
		if !filter.IncludeCancelled && !appt.OccupiesSlot() {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) confirmedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, appt := range f.appointments {
		if appt.OccupiesSlot() {
			count++
		}
	}
	return count
}

type fakeProviderDirectory struct {
	exists bool
	err    error
}

func (f *fakeProviderDirectory) Exists(_ context.Context, _ string) (bool, error) {
	return f.exists, f.err
}

// fakeTxManager сериализует конкурентные транзакции глобальной блокировкой,
// воспроизводя изоляцию serializable
type fakeTxManager struct {
	mu  sync.Mutex
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeAppointmentRepo, dir *fakeProviderDirectory, txMgr TransactionManager, now time.Time) *UseCase {
	return NewUseCase(repo, dir, domain.DefaultBusinessHours(), txMgr, &fixedTimeProvider{now: now}, noopLogger{})
}

func validRequest() *Request {
	return &Request{
		CustomerID: "customer-1",
		ProviderID: "provider-1",
		Date:       time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		Hour:       14,
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeAppointmentRepo()
	uc := newTestUseCase(repo, &fakeProviderDirectory{exists: true}, &fakeTxManager{}, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "provider-1", resp.ProviderID)
	assert.Equal(t, "customer-1", resp.CustomerID)
	assert.Equal(t, 14, resp.Hour)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 1, repo.confirmedCount())
}

func TestExecute_SlotConflict(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeAppointmentRepo()
	uc := newTestUseCase(repo, &fakeProviderDirectory{exists: true}, &fakeTxManager{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Второй запрос того же слота другим клиентом
	second := validRequest()
	second.CustomerID = "customer-2"

	_, err = uc.Execute(context.Background(), second)

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, 1, repo.confirmedCount())
}

func TestExecute_UnknownProvider(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(newFakeAppointmentRepo(), &fakeProviderDirectory{exists: false}, &fakeTxManager{}, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestExecute_HourOutsideBusinessRange(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(newFakeAppointmentRepo(), &fakeProviderDirectory{exists: true}, &fakeTxManager{}, now)

	for _, hour := range []int{7, 18, 25, -1} {
		req := validRequest()
		req.Hour = hour

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidSlot, "hour %d must be rejected", hour)
	}
}

func TestExecute_PastSlot(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 30, 0, 0, time.UTC)
	uc := newTestUseCase(newFakeAppointmentRepo(), &fakeProviderDirectory{exists: true}, &fakeTxManager{}, now)

	t.Run("past date", func(t *testing.T) {
		req := validRequest()
		req.Date = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		req.Hour = 10

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrPastSlot)
	})

	t.Run("earlier hour today", func(t *testing.T) {
		req := validRequest()
		req.Date = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
		req.Hour = 11

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrPastSlot)
	})
}

func TestExecute_MissingCustomerID(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(newFakeAppointmentRepo(), &fakeProviderDirectory{exists: true}, &fakeTxManager{}, now)

	req := validRequest()
	req.CustomerID = ""

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SerializationFailureMapsToUnavailable(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	txErr := fmt.Errorf("transaction failed after retries: %w", &pq.Error{Code: "40001"})
	uc := newTestUseCase(newFakeAppointmentRepo(), &fakeProviderDirectory{exists: true}, &fakeTxManager{err: txErr}, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestExecute_ConcurrentRequestsExactlyOneWins(t *testing.T) {
	const workers = 32

	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeAppointmentRepo()
	uc := newTestUseCase(repo, &fakeProviderDirectory{exists: true}, &fakeTxManager{}, now)

	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(customer int) {
			defer wg.Done()

			req := validRequest()
			req.CustomerID = fmt.Sprintf("customer-%d", customer)

			_, err := uc.Execute(context.Background(), req)
			results <- err
		}(i)
	}

	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSlotConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes, "exactly one request must win the slot")
	assert.Equal(t, workers-1, conflicts)
	assert.Equal(t, 1, repo.confirmedCount())
}
