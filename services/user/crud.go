package user

import (
	"fmt"

	"akplaw/models"
)

// GetUserByID retrieves a user profile by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// GetUserByEmail retrieves a user profile by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateProfile applies self-service profile edits.
func (s *DefaultUserService) UpdateProfile(userID string, req ProfileUpdateRequest) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}
	if err := s.Repo.Update(u); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return u, nil
}

// GetAllUsers lists every account. Admin only.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// GetUsersByRole lists the accounts holding one role tier. Admin only.
func (s *DefaultUserService) GetUsersByRole(role string) ([]models.User, error) {
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	return s.Repo.GetByRole(role)
}

// DeleteUser removes an account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	// Best effort: drop any live session.
	_ = s.RevokeAuthToken(userID)
	return nil
}
