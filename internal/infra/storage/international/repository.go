package international

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

// Repository repositório das janelas de atendimento internacional
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository cria o repositório de janelas internacionais
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var windowColumns = []string{
	"id",
	"country_code",
	"country_name",
	"flag_emoji",
	"start_date",
	"end_date",
	"city",
	"active",
	"created_at",
}

// ResolveForDate busca a janela ativa que cobre a data.
// Janelas sobrepostas não deveriam existir, mas são toleradas: a escolha é
// determinística por start_date e depois id.
func (r *Repository) ResolveForDate(ctx context.Context, date time.Time) (*domain.InternationalWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("international_dates").
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date}).
		Where(squirrel.Eq{"active": true}).
		OrderBy("start_date ASC, id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ResolveForDate - build select query: %v", ErrBuildQuery, err)
	}

	window, err := scanWindow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ResolveForDate - scan window: %v", ErrScanRow, err)
	}

	return window, nil
}

// ListActiveUpcoming lista janelas ativas que ainda não terminaram (site público)
func (r *Repository) ListActiveUpcoming(ctx context.Context, from time.Time) ([]*domain.InternationalWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("international_dates").
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.GtOrEq{"end_date": from}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryWindows(ctx, executor, query, args, "ListActiveUpcoming")
}

// List lista todas as janelas, mais recentes primeiro (painel admin)
func (r *Repository) List(ctx context.Context) ([]*domain.InternationalWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("international_dates").
		OrderBy("start_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryWindows(ctx, executor, query, args, "List")
}

// Create insere uma nova janela internacional
func (r *Repository) Create(ctx context.Context, window *domain.InternationalWindow) (*domain.InternationalWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("international_dates").
		Columns("country_code", "country_name", "flag_emoji", "start_date", "end_date", "city", "active").
		Values(
			window.CountryCode,
			window.CountryName,
			window.FlagEmoji,
			window.StartDate,
			window.EndDate,
			window.City,
			window.Active,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&window.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time
	return window, nil
}

// SetActive ativa/desativa uma janela
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("international_dates").
		Set("active", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetActive")
}

// Delete remove uma janela
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("international_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor dbmetrics.DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

func (r *Repository) queryWindows(ctx context.Context, executor dbmetrics.DBExecutor, query string, args []interface{}, op string) ([]*domain.InternationalWindow, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	windows := make([]*domain.InternationalWindow, 0)
	for rows.Next() {
		window, err := scanWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		windows = append(windows, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return windows, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWindow(row rowScanner) (*domain.InternationalWindow, error) {
	var window domain.InternationalWindow
	var createdAt sql.NullTime

	err := row.Scan(
		&window.ID,
		&window.CountryCode,
		&window.CountryName,
		&window.FlagEmoji,
		&window.StartDate,
		&window.EndDate,
		&window.City,
		&window.Active,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	window.CreatedAt = createdAt.Time
	return &window, nil
}
