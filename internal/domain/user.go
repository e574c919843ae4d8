package domain

import "strings"

// UserRole represents the dashboard role of a user account.
type UserRole string

const (
	UserRoleManager    UserRole = "manager"
	UserRoleDispatcher UserRole = "dispatcher"
	UserRoleSafety     UserRole = "safety"
	UserRoleAnalyst    UserRole = "analyst"
)

// User represents a dashboard user account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         UserRole
}

// Validate checks the registration fields and returns all violations found.
// The password is validated separately by the auth service before hashing.
func (u *User) Validate() ValidationErrors {
	var errs ValidationErrors

	if u.Email == "" || !strings.Contains(u.Email, "@") {
		errs = append(errs, "Valid email is required")
	}
	if u.Name == "" {
		errs = append(errs, "Name is required")
	}
	if u.Role != "" {
		switch u.Role {
		case UserRoleManager, UserRoleDispatcher, UserRoleSafety, UserRoleAnalyst:
		default:
			errs = append(errs, "Role must be one of: manager, dispatcher, safety, analyst")
		}
	}

	return errs
}
