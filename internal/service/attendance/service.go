package attendance

import (
	"context"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, userRepository user.UserRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
	}
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, employeeID string) (attendance.ListAttendanceResponse, error) {
	if validator.IsEmpty(employeeID) {
		return attendance.ListAttendanceResponse{}, attendance.ErrEmployeeIDRequired
	}
	return a.list(ctx, employeeID)
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeID string) (attendance.ListAttendanceResponse, error) {
	if validator.IsEmpty(employeeID) {
		return attendance.ListAttendanceResponse{}, attendance.ErrEmployeeIDRequired
	}
	if _, err := a.UserRepository.GetByEmployeeID(ctx, employeeID); err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return a.list(ctx, employeeID)
}

func (a *AttendanceServiceImpl) list(ctx context.Context, employeeID string) (attendance.ListAttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	return attendance.NewListAttendanceResponse(records), nil
}
