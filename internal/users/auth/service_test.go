// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package auth_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell/internal/platform/apperr"
	"github.com/inkwell-app/inkwell/internal/platform/sec"
	"github.com/inkwell-app/inkwell/internal/users/auth"
)

// fakeAccountRepository stores accounts and role memberships in memory.
type fakeAccountRepository struct {
	accounts map[string]*auth.Account // keyed by id
	roles    map[string][]string      // accountID -> role names
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{
		accounts: make(map[string]*auth.Account),
		roles:    make(map[string][]string),
	}
}

func (f *fakeAccountRepository) FindByID(_ context.Context, id string) (*auth.Account, error) {
	if account, ok := f.accounts[id]; ok {
		hydrated := *account
		hydrated.Roles = f.roles[id]
		return &hydrated, nil
	}
	return nil, apperr.NotFound("Account")
}

func (f *fakeAccountRepository) FindByEmail(_ context.Context, email string) (*auth.Account, error) {
	for _, account := range f.accounts {
		if account.Email == email {
			hydrated := *account
			hydrated.Roles = f.roles[account.ID]
			return &hydrated, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (f *fakeAccountRepository) FindByUsername(_ context.Context, username string) (*auth.Account, error) {
	for _, account := range f.accounts {
		if account.Username == username {
			hydrated := *account
			hydrated.Roles = f.roles[account.ID]
			return &hydrated, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (f *fakeAccountRepository) Create(_ context.Context, account *auth.Account) error {
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepository) AssignRole(_ context.Context, accountID, roleName string) error {
	if sec.HasRole(f.roles[accountID], roleName) {
		return nil
	}
	f.roles[accountID] = append(f.roles[accountID], roleName)
	return nil
}

func (f *fakeAccountRepository) RolesFor(_ context.Context, accountID string) ([]string, error) {
	return f.roles[accountID], nil
}

func (f *fakeAccountRepository) UsernamesFor(_ context.Context, ids []string) (map[string]string, error) {
	result := make(map[string]string, len(ids))
	for _, id := range ids {
		if account, ok := f.accounts[id]; ok {
			result[id] = account.Username
		}
	}
	return result, nil
}

func (f *fakeAccountRepository) TouchLastLogin(_ context.Context, accountID string) error {
	if account, ok := f.accounts[accountID]; ok {
		now := time.Now()
		account.LastLoginAt = &now
	}
	return nil
}

// fakeSessionRepository tracks refresh sessions by token hash.
type fakeSessionRepository struct {
	sessions map[string]*auth.Session // keyed by token hash
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: make(map[string]*auth.Session)}
}

func (f *fakeSessionRepository) Create(_ context.Context, session *auth.Session) error {
	f.sessions[session.TokenHash] = session
	return nil
}

func (f *fakeSessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	session, ok := f.sessions[tokenHash]
	if !ok || session.IsRevoked || session.ExpiresAt.Before(time.Now()) {
		return nil, apperr.NotFound("Session")
	}
	return session, nil
}

func (f *fakeSessionRepository) Revoke(_ context.Context, sessionID string) error {
	for _, session := range f.sessions {
		if session.ID == sessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeSessionRepository) RevokeAll(_ context.Context, userID string) error {
	for _, session := range f.sessions {
		if session.UserID == userID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeSessionRepository) DeleteExpired(_ context.Context) error { return nil }

// fakeTokenProvider issues predictable token strings.
type fakeTokenProvider struct {
	lastRoles []string
}

func (f *fakeTokenProvider) GenerateAccessToken(userID, _ string, roles []string, _ time.Duration) (string, error) {
	f.lastRoles = roles
	return "token-for-" + userID, nil
}

type fixture struct {
	service  *auth.Service
	accounts *fakeAccountRepository
	sessions *fakeSessionRepository
	tokens   *fakeTokenProvider
}

func newFixture() *fixture {
	accounts := newFakeAccountRepository()
	sessions := newFakeSessionRepository()
	tokens := &fakeTokenProvider{}
	return &fixture{
		service:  auth.NewService(accounts, sessions, tokens, slog.Default()),
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
	}
}

func register(t *testing.T, f *fixture) *auth.Account {
	t.Helper()
	account, err := f.service.Register(context.Background(), auth.RegisterInput{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	return account
}

func TestRegister_AssignsExactlyUserRole(t *testing.T) {
	f := newFixture()

	account := register(t, f)

	assert.Equal(t, []string{sec.RoleUser}, account.Roles)
	assert.NotEmpty(t, account.ID)
	assert.NotEqual(t, "hunter2hunter2", account.PasswordHash)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	f := newFixture()
	register(t, f)

	_, err := f.service.Register(context.Background(), auth.RegisterInput{
		Username: "janet",
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

func TestLogin_HonorsReturnURL(t *testing.T) {
	f := newFixture()
	register(t, f)

	session, err := f.service.Login(context.Background(), auth.LoginInput{
		Login:     "jane@example.com",
		Password:  "hunter2hunter2",
		ReturnURL: "/blogs?urlHandle=getting-started",
	})

	require.NoError(t, err)
	assert.Equal(t, "/blogs?urlHandle=getting-started", session.RedirectURL)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, []string{sec.RoleUser}, f.tokens.lastRoles)
}

func TestLogin_DefaultsRedirectToRoot(t *testing.T) {
	f := newFixture()
	register(t, f)

	cases := []string{"", "https://evil.example.com/", "//evil.example.com"}
	for _, returnURL := range cases {
		session, err := f.service.Login(context.Background(), auth.LoginInput{
			Login:     "jane",
			Password:  "hunter2hunter2",
			ReturnURL: returnURL,
		})
		require.NoError(t, err)
		assert.Equal(t, "/", session.RedirectURL)
	}
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	f := newFixture()
	register(t, f)

	_, err := f.service.Login(context.Background(), auth.LoginInput{
		Login:    "jane",
		Password: "not-the-password",
	})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}

func TestLogout_RevokedTokenCannotRefresh(t *testing.T) {
	f := newFixture()
	register(t, f)

	session, err := f.service.Login(context.Background(), auth.LoginInput{
		Login:    "jane",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(context.Background(), session.RefreshToken))

	_, err = f.service.RefreshSession(context.Background(), session.RefreshToken, "ua", "ip")
	require.Error(t, err)
}

func TestRefreshSession_RotatesToken(t *testing.T) {
	f := newFixture()
	register(t, f)

	session, err := f.service.Login(context.Background(), auth.LoginInput{
		Login:    "jane",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	rotated, err := f.service.RefreshSession(context.Background(), session.RefreshToken, "ua", "ip")
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// The old token is burned after rotation.
	_, err = f.service.RefreshSession(context.Background(), session.RefreshToken, "ua", "ip")
	require.Error(t, err)
}

func TestSeedSuperAdmin_GrantsEveryRole(t *testing.T) {
	f := newFixture()

	err := f.service.SeedSuperAdmin(context.Background(), "ops@example.com", "a-strong-secret")
	require.NoError(t, err)

	account, err := f.accounts.FindByEmail(context.Background(), "ops@example.com")
	require.NoError(t, err)
	assert.True(t, sec.HasRole(account.Roles, sec.RoleSuperAdmin))
	assert.True(t, sec.HasRole(account.Roles, sec.RoleAdmin))
	assert.True(t, sec.HasRole(account.Roles, sec.RoleUser))
	assert.Equal(t, "ops", account.Username)
}

func TestSeedSuperAdmin_Idempotent(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.service.SeedSuperAdmin(context.Background(), "ops@example.com", "a-strong-secret"))
	require.NoError(t, f.service.SeedSuperAdmin(context.Background(), "ops@example.com", "a-strong-secret"))

	assert.Len(t, f.accounts.accounts, 1)
}
