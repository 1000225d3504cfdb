package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	authRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/adminauth"
	"github.com/edumrsdw-devops/cadoreClinic/internal/service/auth/models"
)

type fakeAuthRepo struct {
	users    map[string]*domain.AdminUser
	sessions map[string]*domain.Session
}

func newFakeAuthRepo(users ...*domain.AdminUser) *fakeAuthRepo {
	repo := &fakeAuthRepo{
		users:    make(map[string]*domain.AdminUser),
		sessions: make(map[string]*domain.Session),
	}
	for _, user := range users {
		repo.users[user.Username] = user
	}
	return repo
}

func (f *fakeAuthRepo) GetUserByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, authRepo.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeAuthRepo) GetUserByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, authRepo.ErrUserNotFound
}

func (f *fakeAuthRepo) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	for _, user := range f.users {
		if user.ID == userID {
			user.PasswordHash = passwordHash
			return nil
		}
	}
	return authRepo.ErrUserNotFound
}

func (f *fakeAuthRepo) CreateSession(ctx context.Context, session *domain.Session) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeAuthRepo) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, authRepo.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeAuthRepo) DeleteSession(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeAuthRepo) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	return 0, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *fakeAuthRepo, *fixedTimeProvider) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := newFakeAuthRepo(&domain.AdminUser{
		ID:           1,
		Username:     "admin",
		PasswordHash: string(hash),
		Name:         "Administrador",
	})
	clock := &fixedTimeProvider{now: testNow}
	return NewService(repo, 24*time.Hour, clock, &nopLogger{}), repo, clock
}

func TestLogin_Success(t *testing.T) {
	svc, repo, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, "Administrador", resp.User.Name)

	session, ok := repo.sessions[resp.SessionID]
	require.True(t, ok)
	assert.Equal(t, testNow.Add(24*time.Hour), session.ExpiresAt)
}

func TestLogin_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, errUnknown := svc.Login(context.Background(), &models.LoginRequest{Username: "nobody", Password: "admin123"})
	_, errWrongPass := svc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthenticate_Success(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestAuthenticate_ExpiredSessionIsRemoved(t *testing.T) {
	svc, repo, clock := newTestService(t)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	clock.now = testNow.Add(25 * time.Hour)

	_, err = svc.Authenticate(context.Background(), resp.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// a sessão vencida é removida na validação
	_, ok := repo.sessions[resp.SessionID]
	assert.False(t, ok)
}

func TestAuthenticate_EmptyAndUnknownSession(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Authenticate(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestLogout_UnknownSessionIsNotAnError(t *testing.T) {
	svc, _, _ := newTestService(t)
	assert.NoError(t, svc.Logout(context.Background(), "does-not-exist"))
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	// senha atual errada
	err := svc.ChangePassword(context.Background(), 1, &models.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpass123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// nova senha curta demais
	err = svc.ChangePassword(context.Background(), 1, &models.ChangePasswordRequest{
		CurrentPassword: "admin123",
		NewPassword:     "abc",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// troca válida: o login passa a aceitar a nova senha
	err = svc.ChangePassword(context.Background(), 1, &models.ChangePasswordRequest{
		CurrentPassword: "admin123",
		NewPassword:     "newpass123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "newpass123"})
	assert.NoError(t, err)
}
