package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
)

type userRepositoryImpl struct {
	mu    sync.RWMutex
	users []user.User
}

// NewUserRepository returns a user store preloaded with seed, in order.
func NewUserRepository(seed ...user.User) user.UserRepository {
	users := make([]user.User, len(seed))
	copy(users, seed)
	return &userRepositoryImpl{users: users}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.EmployeeID == newUser.EmployeeID {
			return user.User{}, user.ErrEmployeeIDExists
		}
		if newUser.Email != "" && strings.EqualFold(u.Email, newUser.Email) {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	r.users = append(r.users, newUser)
	return newUser, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.find(func(u user.User) bool { return u.ID == id })
}

// GetByEmployeeID implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (user.User, error) {
	return r.find(func(u user.User) bool { return u.EmployeeID == employeeID })
}

// GetByIdentifier implements user.UserRepository.
func (r *userRepositoryImpl) GetByIdentifier(ctx context.Context, identifier string) (user.User, error) {
	return r.find(func(u user.User) bool {
		return u.EmployeeID == identifier || strings.EqualFold(u.Email, identifier)
	})
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, filter user.UserFilter) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		if search != "" && !matchesSearch(u, search) {
			continue
		}
		result = append(result, u)
	}
	return result, nil
}

// Count implements user.UserRepository.
func (r *userRepositoryImpl) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func (r *userRepositoryImpl) find(match func(user.User) bool) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

// matchesSearch does a case-insensitive substring match on name, department
// and employee ID. search must already be lower-cased.
func matchesSearch(u user.User, search string) bool {
	return strings.Contains(strings.ToLower(u.Name), search) ||
		strings.Contains(strings.ToLower(u.Department), search) ||
		strings.Contains(strings.ToLower(u.EmployeeID), search)
}
