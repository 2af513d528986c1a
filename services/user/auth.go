package user

import (
	"context"
	"fmt"
	"time"

	"akplaw/models"
	"akplaw/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authTokenDuration = 24 * time.Hour

// Register opens a new account with email and password.
func (s *DefaultUserService) Register(req RegistrationRequest) (*AuthResponse, error) {
	if err := verifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	role := models.RoleGeneral
	if req.Role == models.RoleApplicant {
		role = models.RoleApplicant
	}

	u := models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := s.Repo.Create(&u); err != nil {
		utils.GetLogger().Error("Register: failed to persist user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(&u)
}

// Authenticate verifies credentials and returns a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: lookup failed", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if u == nil || u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(u)
}

// RevokeAuthToken invalidates the cached token for a user, signing them out.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	authCache := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := authCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to revoke auth token: %w", err)
	}
	return nil
}

// UpdatePassword changes the account password after verifying the current one.
func (s *DefaultUserService) UpdatePassword(userID, currentPassword, newPassword string) error {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if err := verifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hashed)
	if err := s.Repo.Update(u); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	// Invalidate any cached session after a password change.
	return s.RevokeAuthToken(userID)
}

// issueToken generates a JWT, caches its hash for revocation checks, and
// builds the auth response.
func (s *DefaultUserService) issueToken(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, authTokenDuration)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}

	authCache := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := authCache.Set(ctx, utils.AuthCachePrefix+u.ID, utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
	}

	return &AuthResponse{
		ID:    u.ID,
		Token: token,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}, nil
}

// verifyPasswordComplexity enforces the minimum password rules.
func verifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	return nil
}
