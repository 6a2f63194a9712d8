package user

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee
	RoleAdmin    Role = "admin"    // HR / system administrator
)

// ParseRole converts s into a Role, rejecting anything outside the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleEmployee, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// DefaultDesignation is the job title given to users created through signup.
func (r Role) DefaultDesignation() string {
	if r == RoleAdmin {
		return "System Admin"
	}
	return "Employee"
}

// DefaultDepartment is assigned to every user created through signup.
const DefaultDepartment = "Unassigned"

type User struct {
	ID           string
	EmployeeID   string
	Email        string
	Name         string
	Role         Role
	Department   string
	Designation  string
	Phone        string
	Address      string
	JoinDate     time.Time
	ProfileImage *string
	PasswordHash string
	CreatedAt    time.Time
}

// IsAdmin checks if user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Can reports whether the user's role grants permission.
func (u *User) Can(permission Permission) bool {
	return HasPermission(u.Role, permission)
}
