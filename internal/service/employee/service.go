package employee

import (
	"context"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	user.UserRepository
}

func NewEmployeeService(userRepository user.UserRepository) user.EmployeeService {
	return &EmployeeServiceImpl{UserRepository: userRepository}
}

// ListEmployees implements user.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context, req user.ListEmployeesRequest) ([]user.UserResponse, error) {
	role := user.RoleEmployee
	users, err := e.UserRepository.List(ctx, user.UserFilter{Role: &role, Search: req.Query})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		employees = append(employees, user.NewUserResponse(u))
	}
	return employees, nil
}
