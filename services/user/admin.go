package user

import (
	"fmt"

	"akplaw/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ChangeRole moves an account to a new role tier. Downgrading away from
// premier clears the assigned advocate, since the sub-record is only
// meaningful for premier clients.
func (s *DefaultUserService) ChangeRole(userID, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	u.Role = role
	update := bson.M{"role": role}
	if role != models.RolePremier {
		// The advocate field carries omitempty, so a whole-document $set
		// would silently drop the nil and leave the stored sub-record in
		// place. Set it to null explicitly.
		u.Advocate = nil
		update["advocate"] = nil
	}
	if err := s.Repo.UpdateSetDocument(userID, update); err != nil {
		return nil, fmt.Errorf("failed to change role: %w", err)
	}
	return u, nil
}

// AssignAdvocate attaches an advocate sub-record to a premier client.
func (s *DefaultUserService) AssignAdvocate(userID string, adv models.AssignedAdvocate) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if u.Role != models.RolePremier {
		return nil, fmt.Errorf("advocates can only be assigned to premier clients")
	}
	if adv.Name == "" || adv.Email == "" {
		return nil, fmt.Errorf("advocate name and email are required")
	}

	u.Advocate = &adv
	if err := s.Repo.Update(u); err != nil {
		return nil, fmt.Errorf("failed to assign advocate: %w", err)
	}
	return u, nil
}

// ClearAdvocate detaches the advocate sub-record.
func (s *DefaultUserService) ClearAdvocate(userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	u.Advocate = nil
	// Explicit null rather than $set of the whole struct; see ChangeRole.
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"advocate": nil}); err != nil {
		return nil, fmt.Errorf("failed to clear advocate: %w", err)
	}
	return u, nil
}
