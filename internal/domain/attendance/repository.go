package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// ListByEmployee returns the employee's records, most recent date first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}
