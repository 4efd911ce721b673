package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error

	gotReq *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string, withUser bool) *httptest.ResponseRecorder {
	t.Helper()
	return doRequestIn(t, uc, body, withUser, time.UTC)
}

func doRequestIn(t *testing.T, uc *fakeUseCase, body string, withUser bool, loc *time.Location) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, loc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(body))
	if withUser {
		req.Header.Set(middleware.UserIDHeader, "customer-1")
	}

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func validBody() string {
	return `{"provider_id": "provider-1", "date": "2024-06-11T14:00:00Z"}`
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createAppointment.Response{
			ID:         "appt-1",
			ProviderID: "provider-1",
			CustomerID: "customer-1",
			Date:       time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
			Hour:       14,
			Status:     "confirmed",
			CreatedAt:  time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
		},
	}

	rec := doRequest(t, uc, validBody(), true)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, "2024-06-11T14:00:00Z", resp.Date)
	assert.Equal(t, 14, resp.Hour)
	assert.Equal(t, "confirmed", resp.Status)

	// Клиент из заголовка, час из даты
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "customer-1", uc.gotReq.CustomerID)
	assert.Equal(t, 14, uc.gotReq.Hour)
}

func TestHandle_SlotInterpretedInServiceTimezone(t *testing.T) {
	saoPaulo := time.FixedZone("-03", -3*60*60)
	uc := &fakeUseCase{
		resp: &createAppointment.Response{
			ID:         "appt-1",
			ProviderID: "provider-1",
			CustomerID: "customer-1",
			Date:       time.Date(2024, 6, 11, 0, 0, 0, 0, saoPaulo),
			Hour:       14,
			Status:     "confirmed",
			CreatedAt:  time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
		},
	}

	// 17:00 UTC - это 14:00 в зоне сервиса: час слота берется после приведения
	body := `{"provider_id": "provider-1", "date": "2024-06-11T17:00:00Z"}`
	rec := doRequestIn(t, uc, body, true, saoPaulo)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, 14, uc.gotReq.Hour)
	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, saoPaulo), uc.gotReq.Date)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-06-11T14:00:00-03:00", resp.Date)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, validBody(), false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	cases := map[string]string{
		"broken json":      `{"provider_id": `,
		"unknown field":    `{"provider_id": "p", "date": "2024-06-11T14:00:00Z", "extra": 1}`,
		"bad date":         `{"provider_id": "p", "date": "not-a-date"}`,
		"non-zero minutes": `{"provider_id": "p", "date": "2024-06-11T14:30:00Z"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{}, body, true)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot conflict", createAppointment.ErrSlotConflict, http.StatusConflict},
		{"unknown provider", createAppointment.ErrUnknownProvider, http.StatusNotFound},
		{"invalid slot", createAppointment.ErrInvalidSlot, http.StatusBadRequest},
		{"past slot", createAppointment.ErrPastSlot, http.StatusBadRequest},
		{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"storage unavailable", createAppointment.ErrUnavailable, http.StatusServiceUnavailable},
		{"internal error", createAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tc.err}, validBody(), true)

			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}
