package user

import (
	"context"
	"fmt"

	"akplaw/models"
	"akplaw/utils"

	"go.uber.org/zap"
)

// FederatedSignIn verifies a Firebase ID token from a federated provider and
// upserts the user profile keyed by the token subject.
func (s *DefaultUserService) FederatedSignIn(ctx context.Context, idToken string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if utils.FirebaseAuthClient == nil {
		logger.Error("FederatedSignIn: firebase auth client not initialized")
		return nil, ErrFederatedToken
	}

	tok, err := utils.FirebaseAuthClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		logger.Warn("FederatedSignIn: token verification failed", zap.Error(err))
		return nil, ErrFederatedToken
	}

	email, _ := tok.Claims["email"].(string)
	name, _ := tok.Claims["name"].(string)
	if email == "" {
		return nil, ErrFederatedToken
	}

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("FederatedSignIn: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}
	if u == nil {
		u = &models.User{
			ID:        tok.UID,
			Email:     email,
			Name:      name,
			Role:      models.RoleGeneral,
			Federated: true,
		}
		if err := s.Repo.Create(u); err != nil {
			logger.Error("FederatedSignIn: failed to create profile", zap.Error(err))
			return nil, fmt.Errorf("sign in failed, please try again")
		}
	}

	return s.issueToken(u)
}
