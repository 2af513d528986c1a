package user

import (
	"context"

	userRepo "akplaw/database/repository/user"
	"akplaw/models"
	"akplaw/services/mailer"
)

// RegistrationRequest carries the fields needed to open an account.
type RegistrationRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	// Role may be "applicant" for the careers flow; anything else is ignored
	// and the account opens as "general".
	Role string `json:"role"`
}

// ProfileUpdateRequest carries the self-service editable profile fields.
type ProfileUpdateRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// AuthResponse contains the user's ID, token, and display details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UserService manages accounts, authentication, and role tiers.
type UserService interface {
	// Registration & authentication
	Register(req RegistrationRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	FederatedSignIn(ctx context.Context, idToken string) (*AuthResponse, error)
	RevokeAuthToken(userID string) error

	// Password management
	UpdatePassword(userID, currentPassword, newPassword string) error
	RequestPasswordReset(email string) error
	ResetPassword(email, token, newPassword string) error

	// Profile
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateProfile(userID string, req ProfileUpdateRequest) (*models.User, error)

	// Admin
	GetAllUsers() ([]models.User, error)
	GetUsersByRole(role string) ([]models.User, error)
	ChangeRole(userID, role string) (*models.User, error)
	AssignAdvocate(userID string, adv models.AssignedAdvocate) (*models.User, error)
	ClearAdvocate(userID string) (*models.User, error)
	DeleteUser(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Mailer mailer.Mailer
}
