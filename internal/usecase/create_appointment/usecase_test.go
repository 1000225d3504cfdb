package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	catalogRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/catalog"
	internationalRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/international"
	scheduleRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/schedule"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/types"
)

// fakes dos repositórios usados pelo use case. O repositório de agendamentos
// guarda estado protegido por mutex para os testes de concorrência.

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments []*domain.Appointment
	nextID       int64
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	created := *appointment
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	if created.ServiceName == "" {
		created.ServiceName = "Consulta de Avaliação"
	}
	if created.ServiceDurationMinutes == 0 {
		created.ServiceDurationMinutes = 60
	}
	f.appointments = append(f.appointments, &created)
	return &created, nil
}

func (f *fakeAppointmentRepo) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	active := make([]*domain.Appointment, 0, len(f.appointments))
	for _, appointment := range f.appointments {
		if appointment.IsActive() && appointment.Date.Equal(date) {
			active = append(active, appointment)
		}
	}
	return active, nil
}

type fakeScheduleRepo struct {
	workingHours    *domain.WorkingHours
	workingHoursErr error
	blocks          []*domain.BlockedTime
}

func (f *fakeScheduleRepo) GetWorkingHoursForWeekday(ctx context.Context, dayOfWeek int) (*domain.WorkingHours, error) {
	if f.workingHoursErr != nil {
		return nil, f.workingHoursErr
	}
	return f.workingHours, nil
}

func (f *fakeScheduleRepo) ListBlockedTimesByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error) {
	return f.blocks, nil
}

type fakeCatalogRepo struct {
	durations map[int64]int
}

func (f *fakeCatalogRepo) GetDuration(ctx context.Context, id int64) (int, error) {
	duration, ok := f.durations[id]
	if !ok {
		return 0, catalogRepo.ErrServiceNotFound
	}
	return duration, nil
}

type fakeInternationalRepo struct {
	window *domain.InternationalWindow
}

func (f *fakeInternationalRepo) ResolveForDate(ctx context.Context, date time.Time) (*domain.InternationalWindow, error) {
	if f.window == nil {
		return nil, internationalRepo.ErrWindowNotFound
	}
	return f.window, nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	counters map[string]int64
}

func (f *fakeSettingsRepo) IncrementCounter(ctx context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.counters == nil {
		f.counters = make(map[string]int64)
	}
	f.counters[key]++
	return f.counters[key], nil
}

func (f *fakeSettingsRepo) value(key string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counters[key]
}

// fakeTxManager serializa as transações com um mutex, reproduzindo o efeito
// do bloqueio das linhas da data no banco
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

func defaultWorkingHours() *domain.WorkingHours {
	return &domain.WorkingHours{
		ID:        1,
		DayOfWeek: 1,
		StartTime: "09:00",
		EndTime:   "18:00",
		Active:    true,
	}
}

// segunda-feira, expediente 09:00-18:00
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	uc              *UseCase
	appointmentRepo *fakeAppointmentRepo
	scheduleRepo    *fakeScheduleRepo
	catalogRepo     *fakeCatalogRepo
	intlRepo        *fakeInternationalRepo
	settingsRepo    *fakeSettingsRepo
}

func newTestEnv() *testEnv {
	env := &testEnv{
		appointmentRepo: &fakeAppointmentRepo{},
		scheduleRepo:    &fakeScheduleRepo{workingHours: defaultWorkingHours()},
		catalogRepo:     &fakeCatalogRepo{durations: map[int64]int{1: 60, 2: 45}},
		intlRepo:        &fakeInternationalRepo{},
		settingsRepo:    &fakeSettingsRepo{},
	}
	env.uc = NewUseCase(
		env.appointmentRepo,
		env.scheduleRepo,
		env.catalogRepo,
		env.intlRepo,
		env.settingsRepo,
		&fakeTxManager{},
		&nopLogger{},
	)
	return env
}

func validRequest() *Request {
	return &Request{
		ClientName:  "Maria Silva",
		ClientPhone: "+55 11 99999-0000",
		ServiceID:   1,
		Date:        testDate,
		StartTime:   "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Maria Silva", resp.ClientName)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.DefaultLocationCountry, resp.LocationCountry)

	// o marcador de versão avança junto com a criação
	assert.Equal(t, int64(1), env.settingsRepo.value(appointmentsVersionKey))
}

func TestExecute_StampsCountryFromInternationalWindow(t *testing.T) {
	env := newTestEnv()
	env.intlRepo.window = &domain.InternationalWindow{
		ID:          1,
		CountryCode: "PT",
		CountryName: "Portugal",
		StartDate:   testDate.AddDate(0, 0, -1),
		EndDate:     testDate.AddDate(0, 0, 1),
		Active:      true,
	}

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "PT", resp.LocationCountry)
}

func TestExecute_OverlapReturnsConflict(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// [10:30, 11:15) sobrepõe o [10:00, 11:00) já gravado
	req := validRequest()
	req.ServiceID = 2
	req.StartTime = "10:30"
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)

	// fronteira encostada não conflita
	req = validRequest()
	req.StartTime = "11:00"
	_, err = env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_CancelledAppointmentDoesNotConflict(t *testing.T) {
	env := newTestEnv()
	env.appointmentRepo.appointments = []*domain.Appointment{
		{
			ID:                     99,
			Date:                   testDate,
			StartTime:              "10:00",
			Status:                 domain.StatusCancelled,
			ServiceDurationMinutes: 60,
		},
	}
	env.appointmentRepo.nextID = 99

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_DateBlocked(t *testing.T) {
	env := newTestEnv()
	env.scheduleRepo.blocks = []*domain.BlockedTime{
		{ID: 1, Date: testDate, AllDay: true},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateBlocked)
	assert.Equal(t, int64(0), env.settingsRepo.value(appointmentsVersionKey))
}

func TestExecute_PointBlockInsideRequestedInterval(t *testing.T) {
	env := newTestEnv()
	blockTime := types.TimeString("14:30")
	env.scheduleRepo.blocks = []*domain.BlockedTime{
		{ID: 1, Date: testDate, BlockTime: &blockTime},
	}

	// [14:00, 14:45) contém o minuto 14:30
	req := validRequest()
	req.ServiceID = 2
	req.StartTime = "14:00"
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)

	// [13:45, 14:30) não contém 14:30 (intervalo semiaberto)
	req = validRequest()
	req.ServiceID = 2
	req.StartTime = "13:45"
	_, err = env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	env := newTestEnv()

	// termina às 18:30, depois do fechamento
	req := validRequest()
	req.StartTime = "17:30"
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)

	// antes da abertura
	req = validRequest()
	req.StartTime = "08:00"
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)

	// termina exatamente no fechamento: permitido
	req = validRequest()
	req.StartTime = "17:00"
	_, err = env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_DayClosed(t *testing.T) {
	env := newTestEnv()
	env.scheduleRepo.workingHoursErr = scheduleRepo.ErrWorkingHoursNotFound

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDayClosed)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.ServiceID = 999
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	env := newTestEnv()

	cases := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"missing client name", func(req *Request) { req.ClientName = "   " }},
		{"missing client phone", func(req *Request) { req.ClientPhone = "" }},
		{"invalid service id", func(req *Request) { req.ServiceID = 0 }},
		{"missing date", func(req *Request) { req.Date = time.Time{} }},
		{"invalid time", func(req *Request) { req.StartTime = "25:99" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_SerializationFailureBecomesConflict(t *testing.T) {
	env := newTestEnv()
	env.scheduleRepo.workingHours = defaultWorkingHours()

	uc := NewUseCase(
		env.appointmentRepo,
		env.scheduleRepo,
		env.catalogRepo,
		env.intlRepo,
		env.settingsRepo,
		&failingTxManager{err: &pq.Error{Code: "40001"}},
		&nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

type failingTxManager struct {
	err error
}

func (f *failingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.err
}

func TestExecute_ConcurrentRequestsExactlyOneWins(t *testing.T) {
	env := newTestEnv()

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		default:
			assert.ErrorIs(t, err, ErrSlotConflict)
			conflicts++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.Equal(t, int64(1), env.settingsRepo.value(appointmentsVersionKey))
}
