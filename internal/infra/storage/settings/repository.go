package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/edumrsdw-devops/cadoreClinic/pkg/dbmetrics"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/psqlbuilder"
)

// Repository repositório chave/valor das configurações da clínica
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository cria o repositório de configurações
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetValue busca o valor de uma chave
func (r *Repository) GetValue(ctx context.Context, key string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: GetValue - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetValue - scan value: %v", ErrScanRow, err)
	}

	return value, nil
}

// SetValue grava o valor de uma chave (upsert)
func (r *Repository) SetValue(ctx context.Context, key, value string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetValue - build upsert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetValue - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// IncrementCounter incrementa atomicamente um contador guardado como texto e
// retorna o novo valor. Chave inexistente começa em 1.
func (r *Repository) IncrementCounter(ctx context.Context, key string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("settings").
		Columns("key", "value").
		Values(key, "1").
		Suffix("ON CONFLICT (key) DO UPDATE SET value = (settings.value::bigint + 1)::text RETURNING value::bigint").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: IncrementCounter - build upsert query: %v", ErrBuildQuery, err)
	}

	var value int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("%w: IncrementCounter - execute upsert: %v", ErrExecQuery, err)
	}

	return value, nil
}
