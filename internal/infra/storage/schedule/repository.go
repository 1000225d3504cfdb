package schedule

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

// Repository repositório da agenda: horários de funcionamento e bloqueios
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository cria o repositório da agenda
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWorkingHoursForWeekday busca o horário de funcionamento ativo do dia da
// semana (0=domingo..6=sábado). Sem registro ativo, o dia está fechado e
// ErrWorkingHoursNotFound é retornado.
func (r *Repository) GetWorkingHoursForWeekday(ctx context.Context, dayOfWeek int) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "day_of_week", "start_time", "end_time", "active").
		From("working_hours").
		Where(squirrel.Eq{"day_of_week": dayOfWeek, "active": true}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHoursForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var wh domain.WorkingHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&wh.ID,
		&wh.DayOfWeek,
		&wh.StartTime,
		&wh.EndTime,
		&wh.Active,
	)
	if err == sql.ErrNoRows {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHoursForWeekday - scan row: %v", ErrScanRow, err)
	}

	return &wh, nil
}

// ListBlockedTimesByDate busca os bloqueios de uma data
func (r *Repository) ListBlockedTimesByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedTimeColumns...).
		From("blocked_times").
		Where(squirrel.Eq{"block_date": date}).
		OrderBy("block_time ASC NULLS FIRST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedTimesByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedTimesByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlockedTimes(rows)
}

// ListBlockedTimes lista todos os bloqueios, mais recentes primeiro (painel admin)
func (r *Repository) ListBlockedTimes(ctx context.Context) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedTimeColumns...).
		From("blocked_times").
		OrderBy("block_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlockedTimes(rows)
}

// CreateBlockedTime insere um bloqueio (pontual ou de dia inteiro)
func (r *Repository) CreateBlockedTime(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_times").
		Columns("block_date", "block_time", "all_day", "reason").
		Values(block.Date, block.BlockTime, block.AllDay, block.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedTime - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedTime - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	return block, nil
}

// DeleteBlockedTime remove um bloqueio
func (r *Repository) DeleteBlockedTime(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedTime - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedTime - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedTime - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

var blockedTimeColumns = []string{
	"id",
	"block_date",
	"block_time",
	"all_day",
	"reason",
	"created_at",
}

func scanBlockedTimes(rows *sql.Rows) ([]*domain.BlockedTime, error) {
	blocks := make([]*domain.BlockedTime, 0)

	for rows.Next() {
		var block domain.BlockedTime
		var createdAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.Date,
			&block.BlockTime,
			&block.AllDay,
			&block.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlockedTimes - scan row: %v", ErrScanRow, err)
		}

		block.CreatedAt = createdAt.Time
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlockedTimes - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
