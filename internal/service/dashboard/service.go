package dashboard

import (
	"context"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

// recentLimit caps the recent leave and attendance lists on the employee view.
const recentLimit = 5

type DashboardServiceImpl struct {
	user.UserRepository
	leave.LeaveRequestRepository
	attendance.AttendanceRepository
	now func() time.Time
}

func NewDashboardService(userRepository user.UserRepository, leaveRequestRepository leave.LeaveRequestRepository, attendanceRepository attendance.AttendanceRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		UserRepository:         userRepository,
		LeaveRequestRepository: leaveRequestRepository,
		AttendanceRepository:   attendanceRepository,
		now:                    time.Now,
	}
}

// GetDashboard picks the view for the viewer's role.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, viewer user.User) (*dashboard.DashboardResponse, error) {
	resp := &dashboard.DashboardResponse{Role: string(viewer.Role)}
	if viewer.Can(user.PermissionDashboardAdmin) {
		admin, err := s.GetAdminDashboard(ctx)
		if err != nil {
			return nil, err
		}
		resp.Admin = admin
		return resp, nil
	}

	employee, err := s.GetEmployeeDashboard(ctx, viewer.EmployeeID)
	if err != nil {
		return nil, err
	}
	resp.Employee = employee
	return resp, nil
}

// GetAdminDashboard loads the organisation overview in parallel.
func (s *DashboardServiceImpl) GetAdminDashboard(ctx context.Context) (*dashboard.AdminDashboardResponse, error) {
	today := s.now()

	var (
		employees []user.User
		pending   []leave.LeaveRequest
		present   []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Employee headcount
	g.Go(func() error {
		role := user.RoleEmployee
		var err error
		employees, err = s.UserRepository.List(gCtx, user.UserFilter{Role: &role})
		return err
	})

	// 2. Pending leave requests
	g.Go(func() error {
		status := leave.LeaveRequestStatusPending
		var err error
		pending, err = s.LeaveRequestRepository.List(gCtx, leave.LeaveRequestFilter{Status: &status})
		return err
	})

	// 3. Today's attendance
	g.Go(func() error {
		var err error
		present, err = s.AttendanceRepository.ListByDate(gCtx, today)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var presentToday int64
	for _, a := range present {
		if a.Status == attendance.StatusPresent {
			presentToday++
		}
	}

	return &dashboard.AdminDashboardResponse{
		TotalEmployees: int64(len(employees)),
		PendingLeaves:  int64(len(pending)),
		PresentToday:   presentToday,
		Date:           today.Format(validator.DateLayout),
		PendingList:    leave.NewListLeaveRequestResponse(pending).Requests,
	}, nil
}

// GetEmployeeDashboard loads one employee's overview in parallel.
func (s *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context, employeeID string) (*dashboard.EmployeeDashboardResponse, error) {
	var (
		leaves  leave.ListLeaveRequestResponse
		records attendance.ListAttendanceResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		requests, err := s.LeaveRequestRepository.List(gCtx, leave.LeaveRequestFilter{EmployeeID: &employeeID})
		if err != nil {
			return err
		}
		leaves = leave.NewListLeaveRequestResponse(requests)
		return nil
	})

	g.Go(func() error {
		history, err := s.AttendanceRepository.ListByEmployee(gCtx, employeeID)
		if err != nil {
			return err
		}
		records = attendance.NewListAttendanceResponse(history)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.EmployeeDashboardResponse{
		PresentDays:      int64(records.Summary.Present),
		LeaveSummary:     leaves.Summary,
		RecentLeaves:     head(leaves.Requests, recentLimit),
		RecentAttendance: head(records.Records, recentLimit),
	}, nil
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
