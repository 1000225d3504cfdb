package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	authRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/adminauth"
	"github.com/edumrsdw-devops/cadoreClinic/internal/service/auth/models"
)

// minPasswordLength tamanho mínimo aceito na troca de senha
const minPasswordLength = 6

// Service serviço de autenticação do painel administrativo
type Service struct {
	authRepo     AuthRepository
	sessionTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService cria o serviço de autenticação
func NewService(authRepo AuthRepository, sessionTTL time.Duration, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		authRepo:     authRepo,
		sessionTTL:   sessionTTL,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Login valida as credenciais e abre uma sessão.
// Usuário inexistente e senha errada produzem o mesmo erro.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	s.logger.Info("Login: attempt for username=%s", req.Username)

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, err := s.authRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, authRepo.ErrUserNotFound) {
			s.logger.Warn("Login: username=%s not found", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for username=%s", req.Username)
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.authRepo.CreateSession(ctx, session); err != nil {
		s.logger.Error("Login: failed to create session for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - failed to create session: %v", ErrInternal, err)
	}

	// Limpeza oportunista de sessões vencidas
	if removed, err := s.authRepo.DeleteExpiredSessions(ctx); err != nil {
		s.logger.Warn("Login: failed to clean expired sessions: %v", err)
	} else if removed > 0 {
		s.logger.Info("Login: cleaned %d expired sessions", removed)
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return &models.LoginResponse{
		SessionID: session.ID,
		User:      *models.FromDomainUser(user),
	}, nil
}

// Logout encerra a sessão. Sessão inexistente não é erro.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	s.logger.Info("Logout: closing session")

	if err := s.authRepo.DeleteSession(ctx, sessionID); err != nil {
		s.logger.Error("Logout: failed to delete session: %v", err)
		return fmt.Errorf("%w: Logout - failed to delete session: %v", ErrInternal, err)
	}

	return nil
}

// Authenticate valida o token de sessão e devolve o usuário dono dela.
// Usado pelo middleware do painel administrativo.
func (s *Service) Authenticate(ctx context.Context, sessionID string) (*domain.AdminUser, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	session, err := s.authRepo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, authRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Authenticate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if session.IsExpired(s.timeProvider.Now()) {
		s.logger.Info("Authenticate: session expired for user id=%d", session.UserID)
		if err := s.authRepo.DeleteSession(ctx, sessionID); err != nil {
			s.logger.Warn("Authenticate: failed to delete expired session: %v", err)
		}
		return nil, ErrSessionNotFound
	}

	user, err := s.authRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, authRepo.ErrUserNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Authenticate: failed to get user id=%d: %v", session.UserID, err)
		return nil, fmt.Errorf("%w: Authenticate - failed to get user: %v", ErrInternal, err)
	}

	return user, nil
}

// ChangePassword troca a senha do usuário autenticado
func (s *Service) ChangePassword(ctx context.Context, userID int64, req *models.ChangePasswordRequest) error {
	s.logger.Info("ChangePassword: user id=%d", userID)

	if len(req.NewPassword) < minPasswordLength {
		return fmt.Errorf("%w: new password must have at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	user, err := s.authRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, authRepo.ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		s.logger.Error("ChangePassword: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: ChangePassword - failed to get user: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		s.logger.Warn("ChangePassword: wrong current password for user id=%d", userID)
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("ChangePassword: failed to hash password: %v", err)
		return fmt.Errorf("%w: ChangePassword - failed to hash password: %v", ErrInternal, err)
	}

	if err := s.authRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		s.logger.Error("ChangePassword: failed to update password for user id=%d: %v", userID, err)
		return fmt.Errorf("%w: ChangePassword - failed to update password: %v", ErrInternal, err)
	}

	s.logger.Info("ChangePassword: password updated for user id=%d", userID)
	return nil
}
