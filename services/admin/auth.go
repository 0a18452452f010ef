// File: services/admin/auth.go
package admin

import (
	"context"
	"errors"
	"time"

	adminRepo "brightsmile/database/repository/admin"
	"brightsmile/models"
	"brightsmile/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for a wrong email or password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidSession is returned for a missing, expired or revoked token.
	ErrInvalidSession = errors.New("invalid or expired session")
)

const tokenTTL = 24 * time.Hour

// AuthService is the back office's identity seam: sign in for a token,
// resolve the current user per request, sign out to revoke.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (string, *models.AdminUser, error)
	CurrentUser(ctx context.Context, token string) (*models.AdminUser, error)
	SignOut(ctx context.Context, token string) error
}

// TokenStore keeps hashes of issued tokens until sign-out or expiry.
type TokenStore interface {
	Save(ctx context.Context, tokenHash, adminID string, ttl time.Duration) error
	// Lookup returns the admin id for a token hash, or "" when revoked.
	Lookup(ctx context.Context, tokenHash string) (string, error)
	Revoke(ctx context.Context, tokenHash string) error
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Repo   adminRepo.AdminRepository
	Tokens TokenStore
}

func (s *DefaultAuthService) SignIn(ctx context.Context, email, password string) (string, *models.AdminUser, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		utils.GetLogger().Error("SignIn: failed to fetch admin user", zap.Error(err))
		return "", nil, errors.New("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		return "", nil, err
	}
	if err := s.Tokens.Save(ctx, utils.HashToken(token), user.ID, tokenTTL); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *DefaultAuthService) CurrentUser(ctx context.Context, token string) (*models.AdminUser, error) {
	parsed, err := utils.ValidateToken(token)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}

	adminID, err := s.Tokens.Lookup(ctx, utils.HashToken(token))
	if err != nil {
		return nil, err
	}
	if adminID == "" {
		return nil, ErrInvalidSession
	}

	user, err := s.Repo.GetByID(adminID)
	if err != nil {
		if errors.Is(err, adminRepo.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return user, nil
}

func (s *DefaultAuthService) SignOut(ctx context.Context, token string) error {
	return s.Tokens.Revoke(ctx, utils.HashToken(token))
}

// EnsureBootstrapAdmin creates the configured admin account when it is
// missing, so a fresh deployment has a way into the back office.
func (s *DefaultAuthService) EnsureBootstrapAdmin(email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if _, err := s.Repo.GetByEmail(email); err == nil {
		return nil
	} else if !errors.Is(err, adminRepo.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &models.AdminUser{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(user); err != nil {
		return err
	}
	utils.GetLogger().Info("bootstrap admin account created", zap.String("email", email))
	return nil
}
