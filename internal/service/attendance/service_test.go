package attendance

import (
	"context"
	"testing"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/fixtures"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAttendanceService() attendance.AttendanceService {
	return NewAttendanceService(
		memory.NewAttendanceRepository(fixtures.DefaultAttendance()...),
		memory.NewUserRepository(fixtures.DefaultUsers()...),
	)
}

func TestGetMyAttendance(t *testing.T) {
	svc := newTestAttendanceService()

	resp, err := svc.GetMyAttendance(context.Background(), "EMP001")
	require.NoError(t, err)
	require.Len(t, resp.Records, 5)
	assert.Equal(t, "2026-01-03", resp.Records[0].Date)
	assert.Equal(t, "2025-12-30", resp.Records[4].Date)
	assert.Equal(t, attendance.AttendanceSummary{Present: 2, Absent: 1, HalfDay: 1, OnLeave: 1}, resp.Summary)

	_, err = svc.GetMyAttendance(context.Background(), "")
	assert.ErrorIs(t, err, attendance.ErrEmployeeIDRequired)
}

func TestGetEmployeeAttendance(t *testing.T) {
	svc := newTestAttendanceService()

	resp, err := svc.GetEmployeeAttendance(context.Background(), "EMP004")
	require.NoError(t, err)
	assert.Len(t, resp.Records, 2)
	assert.Equal(t, 1, resp.Summary.OnLeave)

	empty, err := svc.GetEmployeeAttendance(context.Background(), "EMP002")
	require.NoError(t, err)
	assert.Empty(t, empty.Records)

	_, err = svc.GetEmployeeAttendance(context.Background(), "EMP999")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
