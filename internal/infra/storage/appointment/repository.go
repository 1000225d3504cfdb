package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/dbmetrics"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/psqlbuilder"
)

// Repository repositório de agendamentos
type Repository struct {
	db DBExecutor
}

// NewRepository cria o repositório de agendamentos
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// colunas do JOIN appointments + services usadas em todas as leituras
var appointmentColumns = []string{
	"a.id",
	"a.client_name",
	"a.client_phone",
	"a.client_email",
	"a.service_id",
	"a.appointment_date",
	"a.appointment_time",
	"a.location_country",
	"a.status",
	"a.notes",
	"a.created_at",
	"s.name AS service_name",
	"COALESCE(s.duration, 60) AS service_duration",
}

// Create insere um novo agendamento.
// Deve ser chamado dentro da transação serializável do use case de criação;
// fora dela não há proteção contra corrida entre verificação e escrita.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_name",
			"client_phone",
			"client_email",
			"service_id",
			"appointment_date",
			"appointment_time",
			"location_country",
			"status",
			"notes",
		).
		Values(
			appt.ClientName,
			appt.ClientPhone,
			appt.ClientEmail,
			appt.ServiceID,
			appt.Date,
			appt.StartTime,
			appt.LocationCountry,
			appt.Status,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	return appt, nil
}

// GetByID busca um agendamento pelo ID (com nome e duração do serviço)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("services s ON s.id = a.service_id").
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointmentRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetActiveByDate busca os agendamentos não cancelados de uma data, com a
// duração do serviço resolvida ao vivo pelo JOIN (mudar a duração de um
// serviço afeta somente cálculos futuros, nunca os registros gravados).
//
// Dentro de uma transação, a consulta adquire FOR UPDATE OF a para serializar
// tentativas concorrentes de agendamento na mesma data.
func (r *Repository) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("services s ON s.id = a.service_id").
		Where(squirrel.Eq{"a.appointment_date": date}).
		Where(squirrel.NotEq{"a.status": string(domain.StatusCancelled)}).
		OrderBy("a.appointment_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListWithFilter lista agendamentos para o painel admin, com filtro por data
// e status, paginação e total de registros
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	conditions := squirrel.And{}
	if filter.Date != nil {
		conditions = append(conditions, squirrel.Eq{"a.appointment_date": *filter.Date})
	}
	if filter.Status != nil {
		conditions = append(conditions, squirrel.Eq{"a.status": string(*filter.Status)})
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 50
	}

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("services s ON s.id = a.service_id").
		OrderBy("a.appointment_date DESC, a.appointment_time ASC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit))

	if len(conditions) > 0 {
		selectBuilder = selectBuilder.Where(conditions)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments, err := scanAppointments(rows)
	if err != nil {
		return nil, 0, err
	}

	// Total sem paginação, com os mesmos filtros
	countBuilder := psqlbuilder.Select("COUNT(*)").From("appointments a")
	if len(conditions) > 0 {
		countBuilder = countBuilder.Where(conditions)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - scan count: %v", ErrScanRow, err)
	}

	return appointments, total, nil
}

// ListForExport lista agendamentos de um período, em ordem cronológica,
// para a exportação CSV do painel admin
func (r *Repository) ListForExport(ctx context.Context, filter domain.ExportFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("services s ON s.id = a.service_id").
		OrderBy("a.appointment_date ASC, a.appointment_time ASC")

	if filter.StartDate != nil && filter.EndDate != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"a.appointment_date": *filter.StartDate}).
			Where(squirrel.LtOrEq{"a.appointment_date": *filter.EndDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForExport - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForExport - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// UpdateStatus atualiza o status de um agendamento
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// UpdateNotes atualiza as observações de um agendamento
func (r *Repository) UpdateNotes(ctx context.Context, id int64, notes *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("notes", notes).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateNotes")
}

// Delete remove fisicamente um agendamento (ação administrativa)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

// CountActiveOnDate conta agendamentos não cancelados em uma data
func (r *Repository) CountActiveOnDate(ctx context.Context, date time.Time) (int64, error) {
	return r.count(ctx, squirrel.And{
		squirrel.Eq{"appointment_date": date},
		squirrel.NotEq{"status": string(domain.StatusCancelled)},
	}, "CountActiveOnDate")
}

// CountActiveTotal conta todos os agendamentos não cancelados
func (r *Repository) CountActiveTotal(ctx context.Context) (int64, error) {
	return r.count(ctx, squirrel.And{
		squirrel.NotEq{"status": string(domain.StatusCancelled)},
	}, "CountActiveTotal")
}

// CountUpcoming conta agendamentos confirmados a partir de uma data
func (r *Repository) CountUpcoming(ctx context.Context, from time.Time) (int64, error) {
	return r.count(ctx, squirrel.And{
		squirrel.GtOrEq{"appointment_date": from},
		squirrel.Eq{"status": string(domain.StatusConfirmed)},
	}, "CountUpcoming")
}

func (r *Repository) count(ctx context.Context, conditions squirrel.And, op string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(conditions).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build count query: %v", ErrBuildQuery, op, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, op, err)
	}

	return total, nil
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// rowScanner abstrai *sql.Row e *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointmentRow(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.ClientName,
		&appt.ClientPhone,
		&appt.ClientEmail,
		&appt.ServiceID,
		&appt.Date,
		&appt.StartTime,
		&appt.LocationCountry,
		&appt.Status,
		&appt.Notes,
		&createdAt,
		&appt.ServiceName,
		&appt.ServiceDurationMinutes,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointmentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
