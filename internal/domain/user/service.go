package user

import "context"

// EmployeeService serves the admin employee directory.
type EmployeeService interface {
	ListEmployees(ctx context.Context, req ListEmployeesRequest) ([]UserResponse, error)
}
