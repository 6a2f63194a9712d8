package attendance

import "context"

type AttendanceService interface {
	GetMyAttendance(ctx context.Context, employeeID string) (ListAttendanceResponse, error)
	GetEmployeeAttendance(ctx context.Context, employeeID string) (ListAttendanceResponse, error)
}
