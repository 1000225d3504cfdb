package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	catalogRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/catalog"
	internationalRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/international"
	scheduleRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/schedule"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/types"
)

// fakes dos repositórios usados pelo use case

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fakeScheduleRepo struct {
	workingHours    *domain.WorkingHours
	workingHoursErr error
	blocks          []*domain.BlockedTime
	blocksErr       error
}

func (f *fakeScheduleRepo) GetWorkingHoursForWeekday(ctx context.Context, dayOfWeek int) (*domain.WorkingHours, error) {
	if f.workingHoursErr != nil {
		return nil, f.workingHoursErr
	}
	return f.workingHours, nil
}

func (f *fakeScheduleRepo) ListBlockedTimesByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error) {
	if f.blocksErr != nil {
		return nil, f.blocksErr
	}
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

func newTestUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	internationalRepo InternationalRepository,
) *UseCase {
	return NewUseCase(appointmentRepo, scheduleRepo, catalogRepo, internationalRepo, &nopLogger{})
}

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

// segunda-feira, expediente 09:00-18:00
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func TestExecute_FreeDayFullGrid(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{workingHours: defaultWorkingHours()},
		&fakeCatalogRepo{},
		&fakeInternationalRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	// duração padrão de 60 minutos: 09:00 até 17:00, a cada 30 minutos
	require.Len(t, resp.Slots, 17)
	assert.Equal(t, "09:00", resp.Slots[0].String())
	assert.Equal(t, "09:30", resp.Slots[1].String())
	assert.Equal(t, "17:00", resp.Slots[16].String())
	assert.Equal(t, domain.DefaultServiceDurationMinutes, resp.DurationMinutes)
	assert.Empty(t, resp.Message)
	assert.Nil(t, resp.International)
}

func TestExecute_LastCandidateEndsAtClosing(t *testing.T) {
	serviceID := int64(5)
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{workingHours: defaultWorkingHours()},
		&fakeCatalogRepo{durations: map[int64]int{serviceID: 90}},
		&fakeInternationalRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: &serviceID})
	require.NoError(t, err)

	// 90 minutos: o último candidato começa às 16:30 e termina às 18:00
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, "16:30", resp.Slots[len(resp.Slots)-1].String())
}

func TestExecute_AppointmentRemovesOverlappingCandidates(t *testing.T) {
	appointments := []*domain.Appointment{
		{
			ID:                     1,
			StartTime:              "10:00",
			Status:                 domain.StatusConfirmed,
			ServiceDurationMinutes: 60,
		},
	}

	uc := newTestUseCase(
		&fakeAppointmentRepo{appointments: appointments},
		&fakeScheduleRepo{workingHours: defaultWorkingHours()},
		&fakeCatalogRepo{},
		&fakeInternationalRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	slots := slotStrings(resp.Slots)
	// candidatos de 60 minutos sobrepondo [10:00, 11:00) saem da grade
	assert.NotContains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	// fronteiras encostadas não conflitam
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "11:00")
}

func TestExecute_CancelledAppointmentIsIgnored(t *testing.T) {
	appointments := []*domain.Appointment{
		{
			ID:                     1,
			StartTime:              "10:00",
			Status:                 domain.StatusCancelled,
			ServiceDurationMinutes: 60,
		},
	}

	uc := newTestUseCase(
		&fakeAppointmentRepo{appointments: appointments},
		&fakeScheduleRepo{workingHours: defaultWorkingHours()},
		&fakeCatalogRepo{},
		&fakeInternationalRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)
	assert.Contains(t, slotStrings(resp.Slots), "10:00")
}

func TestExecute_PointBlockRemovesContainingCandidates(t *testing.T) {
	blockTime := types.TimeString("14:30")
	blocks := []*domain.BlockedTime{
		{ID: 1, Date: testDate, BlockTime: &blockTime},
	}

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{workingHours: defaultWorkingHours(), blocks: blocks},
		&fakeCatalogRepo{},
		&fakeInternationalRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	slots := slotStrings(resp.Slots)
	// candidatos de 60 minutos contendo o minuto 14:30 saem da grade
	assert.NotContains(t, slots, "14:00")
	assert.NotContains(t, slots, "14:30")
	// [15:00, 16:00) não contém 14:30
	assert.Contains(t, slots, "15:00")
	assert.Contains(t, slots, "13:30")
}

func TestExecute_AllDayBlockReturnsMessage(t *testing.T) {
	blocks := []*domain.BlockedTime{
		{ID: 1, Date: testDate, AllDay: true},
	}

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{workingHours: defaultWorkingHours(), blocks: blocks},
		&fakeCatalogRepo{},
		&fakeInternationalRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, msgDayBlocked, resp.Message)
}

func TestExecute_ClosedDayReturnsMessage(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{workingHoursErr: scheduleRepo.ErrWorkingHoursNotFound},
		&fakeCatalogRepo{},
		&fakeInternationalRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, msgDayClosed, resp.Message)
}

func TestExecute_UnknownServiceFallsBackToDefaultDuration(t *testing.T) {
	serviceID := int64(999)
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{workingHours: defaultWorkingHours()},
		&fakeCatalogRepo{},
		&fakeInternationalRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: &serviceID})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServiceDurationMinutes, resp.DurationMinutes)
}

func TestExecute_InternationalWindowIsAttached(t *testing.T) {
	city := "Lisboa"
	window := &domain.InternationalWindow{
		ID:          1,
		CountryCode: "PT",
		CountryName: "Portugal",
		FlagEmoji:   "🇵🇹",
		StartDate:   testDate.AddDate(0, 0, -2),
		EndDate:     testDate.AddDate(0, 0, 2),
		City:        &city,
		Active:      true,
	}

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{workingHours: defaultWorkingHours()},
		&fakeCatalogRepo{},
		&fakeInternationalRepo{window: window},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	require.NotNil(t, resp.International)
	assert.Equal(t, "PT", resp.International.CountryCode)
	assert.Equal(t, "Portugal", resp.International.CountryName)
	require.NotNil(t, resp.International.City)
	assert.Equal(t, "Lisboa", *resp.International.City)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{workingHours: defaultWorkingHours()},
		&fakeCatalogRepo{},
		&fakeInternationalRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	badID := int64(0)
	_, err = uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: &badID})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ReadIsIdempotent(t *testing.T) {
	blockTime := types.TimeString("11:15")
	uc := newTestUseCase(
		&fakeAppointmentRepo{appointments: []*domain.Appointment{
			{ID: 1, StartTime: "15:00", Status: domain.StatusConfirmed, ServiceDurationMinutes: 45},
		}},
		&fakeScheduleRepo{
			workingHours: defaultWorkingHours(),
			blocks: []*domain.BlockedTime{
				{ID: 1, Date: testDate, BlockTime: &blockTime},
			},
		},
		&fakeCatalogRepo{},
		&fakeInternationalRepo{},
	)

	first, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
	assert.Equal(t, first.DurationMinutes, second.DurationMinutes)
}
