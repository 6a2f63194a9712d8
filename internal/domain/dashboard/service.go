package dashboard

import (
	"context"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, viewer user.User) (*DashboardResponse, error)
	GetAdminDashboard(ctx context.Context) (*AdminDashboardResponse, error)
	GetEmployeeDashboard(ctx context.Context, employeeID string) (*EmployeeDashboardResponse, error)
}
