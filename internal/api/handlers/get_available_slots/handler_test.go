package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/edumrsdw-devops/cadoreClinic/internal/usecase/get_available_slots"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/types"
)

type fakeUseCase struct {
	lastReq *getAvailableSlots.Request
	resp    *getAvailableSlots.Response
	err     error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
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

func get(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ResponseFieldNames(t *testing.T) {
	city := "Lisboa"
	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			Slots:           []types.TimeString{"09:00", "09:30"},
			DurationMinutes: 60,
			International: &getAvailableSlots.InternationalInfo{
				CountryCode: "PT",
				CountryName: "Portugal",
				FlagEmoji:   "🇵🇹",
				City:        &city,
			},
		},
	}
	h := NewHandler(uc, &nopLogger{})

	rec := get(t, h, "/api/available-slots?date=2026-09-07&service_id=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "slots")
	require.Contains(t, body, "international")

	var international map[string]interface{}
	require.NoError(t, json.Unmarshal(body["international"], &international))
	assert.Equal(t, "PT", international["country_code"])
	assert.Equal(t, "Portugal", international["country_name"])
	assert.Equal(t, "🇵🇹", international["flag_emoji"])
	assert.Equal(t, "Lisboa", international["city"])
}

func TestHandle_MissingDate(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, &nopLogger{})

	rec := get(t, h, "/api/available-slots")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandle_InvalidServiceID(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, &nopLogger{})

	rec := get(t, h, "/api/available-slots?date=2026-09-07&service_id=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastReq)
}
