package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/dbmetrics"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/psqlbuilder"
)

// Repository repositório do catálogo de serviços da clínica
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository cria o repositório do catálogo
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var serviceColumns = []string{
	"id",
	"name",
	"description",
	"duration",
	"price",
	"active",
	"sort_order",
	"created_at",
}

// ListActive lista os serviços ativos na ordem de exibição (vitrine pública)
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Service, error) {
	return r.list(ctx, true)
}

// List lista todos os serviços, inclusive desativados (painel admin)
func (r *Repository) List(ctx context.Context) ([]*domain.Service, error) {
	return r.list(ctx, false)
}

func (r *Repository) list(ctx context.Context, onlyActive bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("sort_order ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetByID busca um serviço pelo ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

// GetDuration resolve a duração de um serviço para o cálculo de vagas.
// Serviço inexistente retorna ErrServiceNotFound; o chamador decide o default.
func (r *Repository) GetDuration(ctx context.Context, id int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(duration, 60)").
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: GetDuration - build select query: %v", ErrBuildQuery, err)
	}

	var duration int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&duration)
	if err == sql.ErrNoRows {
		return 0, ErrServiceNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetDuration - scan duration: %v", ErrScanRow, err)
	}

	return duration, nil
}

// Create insere um serviço no fim da ordem de exibição (sort_order = max + 1)
func (r *Repository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("name", "description", "duration", "price", "active", "sort_order").
		Values(
			svc.Name,
			svc.Description,
			svc.DurationMinutes,
			svc.Price,
			svc.Active,
			squirrel.Expr("(SELECT COALESCE(MAX(sort_order), 0) + 1 FROM services)"),
		).
		Suffix("RETURNING id, sort_order, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &svc.SortOrder, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	svc.CreatedAt = createdAt.Time
	return svc, nil
}

// Update aplica uma atualização parcial (campos nil são preservados)
func (r *Repository) Update(ctx context.Context, id int64, update domain.ServiceUpdate) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("services").Where(squirrel.Eq{"id": id})

	changed := false
	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
		changed = true
	}
	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", *update.Description)
		changed = true
	}
	if update.DurationMinutes != nil {
		updateBuilder = updateBuilder.Set("duration", *update.DurationMinutes)
		changed = true
	}
	if update.Price != nil {
		updateBuilder = updateBuilder.Set("price", *update.Price)
		changed = true
	}
	if update.Active != nil {
		updateBuilder = updateBuilder.Set("active", *update.Active)
		changed = true
	}

	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrServiceNotFound
	}

	return r.GetByID(ctx, id)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var svc domain.Service
	var createdAt sql.NullTime

	err := row.Scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.DurationMinutes,
		&svc.Price,
		&svc.Active,
		&svc.SortOrder,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	svc.CreatedAt = createdAt.Time
	return &svc, nil
}
