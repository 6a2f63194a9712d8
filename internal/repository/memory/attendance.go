package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	mu      sync.RWMutex
	records []attendance.Attendance
}

func NewAttendanceRepository(seed ...attendance.Attendance) attendance.AttendanceRepository {
	records := make([]attendance.Attendance, len(seed))
	copy(records, seed)
	return &attendanceRepositoryImpl{records: records}
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]attendance.Attendance, 0)
	for _, a := range r.records {
		if a.EmployeeID == employeeID {
			result = append(result, a)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	y, m, d := date.Date()
	result := make([]attendance.Attendance, 0)
	for _, a := range r.records {
		ay, am, ad := a.Date.Date()
		if ay == y && am == m && ad == d {
			result = append(result, a)
		}
	}
	return result, nil
}
