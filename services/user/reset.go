package user

import (
	"context"
	"fmt"
	"time"

	"akplaw/models"
	"akplaw/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RequestPasswordReset issues a tokened reset link by email. It reports
// success even for unknown addresses so the endpoint cannot be used to probe
// which emails hold accounts.
func (s *DefaultUserService) RequestPasswordReset(email string) error {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("RequestPasswordReset: lookup failed", zap.Error(err))
		return nil
	}
	if u == nil || u.Federated {
		return nil
	}

	token := uuid.New().String()
	cache := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := cache.Set(ctx, utils.ResetTokenPrefix+email, token, utils.ResetTokenTTL).Err(); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if s.Mailer != nil {
		s.Mailer.Enqueue(models.EmailMessage{
			To:      []string{email},
			Subject: "Reset your AKP Law portal password",
			HTML: fmt.Sprintf(`<p>Dear %s,</p>
<p>Use the code below to reset your portal password. It expires in 30 minutes.</p>
<p><strong>%s</strong></p>
<p>If you did not request this, you can safely ignore this email.</p>`, u.Name, token),
		})
	}
	return nil
}

// ResetPassword completes the reset flow given a valid token.
func (s *DefaultUserService) ResetPassword(email, token, newPassword string) error {
	cache := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	stored, err := cache.Get(ctx, utils.ResetTokenPrefix+email).Result()
	if err == redis.Nil || (err == nil && stored != token) {
		return ErrResetTokenInvalid
	}
	if err != nil {
		return fmt.Errorf("failed to verify reset token: %w", err)
	}

	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return ErrUserNotFound
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

	cache.Del(ctx, utils.ResetTokenPrefix+email)
	return s.RevokeAuthToken(u.ID)
}
