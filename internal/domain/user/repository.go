package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (User, error)
	// GetByIdentifier finds a user whose email or employee ID equals identifier.
	GetByIdentifier(ctx context.Context, identifier string) (User, error)
	List(ctx context.Context, filter UserFilter) ([]User, error)
	Count(ctx context.Context) (int, error)
}

// UserFilter narrows List results. Zero values match everything.
type UserFilter struct {
	Role   *Role
	Search string
}
