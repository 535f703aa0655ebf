// File: models/user.go
package models

// Role is the role flag carried by the session profile.
type Role string

const (
	RoleUser     Role = "USER"
	RoleAdmin    Role = "ADMIN"
	RoleLegalPro Role = "LEGAL_PRO"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleLegalPro:
		return true
	}
	return false
}

// UserProfile is the singleton profile of the signed-in session.
type UserProfile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// LoginRequest is the body of a sign-in. The password is accepted and ignored.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// ProfileUpdate carries the profile fields a user may edit. Name must be present.
type ProfileUpdate struct {
	Name   *string `json:"name" binding:"required"`
	Avatar *string `json:"avatar"`
}
