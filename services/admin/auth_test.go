package admin

import (
	"context"
	"testing"
	"time"

	adminRepo "brightsmile/database/repository/admin"
	"brightsmile/models"
	"brightsmile/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memAdminRepo struct {
	users map[string]*models.AdminUser // keyed by email
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{users: make(map[string]*models.AdminUser)}
}

func (r *memAdminRepo) Create(u *models.AdminUser) error {
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *memAdminRepo) GetByEmail(email string) (*models.AdminUser, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, adminRepo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memAdminRepo) GetByID(id string) (*models.AdminUser, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, adminRepo.ErrNotFound
}

type memTokenStore struct {
	byHash map[string]string
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{byHash: make(map[string]string)}
}

func (s *memTokenStore) Save(_ context.Context, tokenHash, adminID string, _ time.Duration) error {
	s.byHash[tokenHash] = adminID
	return nil
}

func (s *memTokenStore) Lookup(_ context.Context, tokenHash string) (string, error) {
	return s.byHash[tokenHash], nil
}

func (s *memTokenStore) Revoke(_ context.Context, tokenHash string) error {
	delete(s.byHash, tokenHash)
	return nil
}

func newTestAuthService(t *testing.T) (*DefaultAuthService, *memAdminRepo) {
	t.Helper()
	repo := newMemAdminRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(&models.AdminUser{
		ID:           "admin-1",
		Email:        "admin@clinic.example",
		PasswordHash: string(hash),
		Role:         "admin",
	}))
	return &DefaultAuthService{Repo: repo, Tokens: newMemTokenStore()}, repo
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.SignIn(ctx, "admin@clinic.example", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.SignIn(ctx, "nobody@clinic.example", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, user, err := svc.SignIn(ctx, "admin@clinic.example", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "admin-1", user.ID)

	resolved, err := svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", resolved.ID)
	assert.Equal(t, "admin@clinic.example", resolved.Email)
}

func TestSignOutRevokesToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, _, err := svc.SignIn(ctx, "admin@clinic.example", "correct horse")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, token))

	_, err = svc.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCurrentUserRejectsForgedToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.CurrentUser(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidSession)

	// A well-formed token that was never signed in is not on the allow-list.
	token, err := utils.GenerateToken("admin-1", "admin@clinic.example", time.Hour)
	require.NoError(t, err)
	_, err = svc.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestEnsureBootstrapAdmin(t *testing.T) {
	svc, repo := newTestAuthService(t)

	require.NoError(t, svc.EnsureBootstrapAdmin("boss@clinic.example", "s3cret"))
	created, err := repo.GetByEmail("boss@clinic.example")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", created.PasswordHash, "password must be stored hashed")

	// Idempotent: a second boot does not replace the account.
	require.NoError(t, svc.EnsureBootstrapAdmin("boss@clinic.example", "other"))
	again, err := repo.GetByEmail("boss@clinic.example")
	require.NoError(t, err)
	assert.Equal(t, created.PasswordHash, again.PasswordHash)

	// Blank config leaves the directory untouched.
	require.NoError(t, svc.EnsureBootstrapAdmin("", ""))
}
