package models

import "time"

// User roles. Role lives on the user document, never in the auth token.
const (
	RoleApplicant = "applicant"
	RoleGeneral   = "general"
	RoleAdmin     = "admin"
	RolePremier   = "premier"
)

// AssignedAdvocate is the advocate sub-record attached to premier clients.
type AssignedAdvocate struct {
	Name     string `bson:"name" json:"name"`
	Title    string `bson:"title" json:"title"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	PhotoURL string `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
}

// User is an account record keyed by the auth subject.
type User struct {
	ID           string            `bson:"id" json:"id"`
	Email        string            `bson:"email" json:"email"`
	Name         string            `bson:"name" json:"name"`
	Phone        string            `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string            `bson:"password_hash,omitempty" json:"-"`
	Role         string            `bson:"role" json:"role"`
	Advocate     *AssignedAdvocate `bson:"advocate,omitempty" json:"advocate,omitempty"`
	Federated    bool              `bson:"federated,omitempty" json:"federated,omitempty"`
	CreatedAt    time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time         `bson:"updated_at" json:"updatedAt"`
}

// ValidRole reports whether r is a recognized role.
func ValidRole(r string) bool {
	switch r {
	case RoleApplicant, RoleGeneral, RoleAdmin, RolePremier:
		return true
	}
	return false
}
