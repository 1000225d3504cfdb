package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/edumrsdw-devops/cadoreClinic/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	lastReq *createAppointment.Request
	resp    *createAppointment.Response
	err     error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

// corpo JSON no formato do contrato público (chaves snake_case)
const requestBody = `{
	"client_name": "Maria Silva",
	"client_phone": "+55 11 99999-0000",
	"client_email": "maria@example.com",
	"service_id": 1,
	"appointment_date": "2026-09-07",
	"appointment_time": "10:00",
	"notes": "Primeira visita"
}`

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_SnakeCaseBodyIsAccepted(t *testing.T) {
	email := "maria@example.com"
	uc := &fakeUseCase{
		resp: &createAppointment.Response{
			ID:              1,
			ClientName:      "Maria Silva",
			ClientPhone:     "+55 11 99999-0000",
			ClientEmail:     &email,
			ServiceID:       1,
			ServiceName:     "Consulta de Avaliação",
			Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			StartTime:       "10:00",
			LocationCountry: "BR",
			Status:          "confirmed",
			CreatedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	h := NewHandler(uc, &nopLogger{})

	rec := post(t, h, requestBody)

	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "Maria Silva", uc.lastReq.ClientName)
	assert.Equal(t, int64(1), uc.lastReq.ServiceID)
	assert.Equal(t, "2026-09-07", uc.lastReq.Date.Format("2006-01-02"))
	assert.Equal(t, "10:00", uc.lastReq.StartTime.String())
}

func TestHandle_CreatedResponseFieldNames(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createAppointment.Response{
			ID:              7,
			ClientName:      "Maria Silva",
			ClientPhone:     "+55 11 99999-0000",
			ServiceID:       1,
			Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			StartTime:       "10:00",
			LocationCountry: "PT",
			Status:          "confirmed",
			CreatedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	h := NewHandler(uc, &nopLogger{})

	rec := post(t, h, requestBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// envelope {message, appointment}
	require.Contains(t, body, "message")
	require.Contains(t, body, "appointment")

	var message string
	require.NoError(t, json.Unmarshal(body["message"], &message))
	assert.Equal(t, msgCreated, message)

	var appointment map[string]interface{}
	require.NoError(t, json.Unmarshal(body["appointment"], &appointment))
	for _, key := range []string{
		"id", "client_name", "client_phone", "service_id",
		"appointment_date", "appointment_time", "location_country", "status", "created_at",
	} {
		assert.Contains(t, appointment, key)
	}
	assert.Equal(t, "2026-09-07", appointment["appointment_date"])
	assert.Equal(t, "10:00", appointment["appointment_time"])
	assert.Equal(t, "PT", appointment["location_country"])
}

func TestHandle_UnknownFieldsAreRejected(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, &nopLogger{})

	rec := post(t, h, `{"clientName": "Maria", "clientPhone": "+55"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot conflict", createAppointment.ErrSlotConflict, http.StatusConflict},
		{"date blocked", createAppointment.ErrDateBlocked, http.StatusConflict},
		{"service not found", createAppointment.ErrServiceNotFound, http.StatusNotFound},
		{"day closed", createAppointment.ErrDayClosed, http.StatusBadRequest},
		{"outside working hours", createAppointment.ErrOutsideWorkingHours, http.StatusBadRequest},
		{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tc.err}, &nopLogger{})
			rec := post(t, h, requestBody)
			assert.Equal(t, tc.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}
