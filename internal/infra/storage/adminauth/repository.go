package adminauth

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/dbmetrics"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/psqlbuilder"
)

// Repository repositório de usuários administrativos e sessões
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository cria o repositório de autenticação
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var userColumns = []string{
	"id",
	"username",
	"password_hash",
	"name",
	"created_at",
}

// GetUserByUsername busca um usuário pelo login
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	return r.getUser(ctx, squirrel.Eq{"username": username}, "GetUserByUsername")
}

// GetUserByID busca um usuário pelo ID
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	return r.getUser(ctx, squirrel.Eq{"id": id}, "GetUserByID")
}

func (r *Repository) getUser(ctx context.Context, where squirrel.Eq, op string) (*domain.AdminUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("admin_users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var user domain.AdminUser
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Name,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
	}

	user.CreatedAt = createdAt.Time
	return &user, nil
}

// UpdatePassword troca o hash de senha do usuário
func (r *Repository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("admin_users").
		Set("password_hash", passwordHash).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePassword - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePassword - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePassword - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// CreateSession insere uma sessão de login
func (r *Repository) CreateSession(ctx context.Context, session *domain.Session) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sessions").
		Columns("id", "user_id", "expires_at").
		Values(session.ID, session.UserID, session.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateSession - build insert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CreateSession - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetSession busca uma sessão pelo token
func (r *Repository) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "expires_at", "created_at").
		From("sessions").
		Where(squirrel.Eq{"id": sessionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSession - build select query: %v", ErrBuildQuery, err)
	}

	var session domain.Session
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&session.UserID,
		&session.ExpiresAt,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSession - scan row: %v", ErrScanRow, err)
	}

	session.CreatedAt = createdAt.Time
	return &session, nil
}

// DeleteSession remove uma sessão (logout)
func (r *Repository) DeleteSession(ctx context.Context, sessionID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Eq{"id": sessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteSession - build delete query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteSession - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteExpiredSessions faz a limpeza periódica de sessões vencidas
func (r *Repository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Expr("expires_at < NOW()")).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredSessions - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredSessions - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredSessions - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
