package memory

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestAttendanceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(
		attendance.Attendance{ID: "1", EmployeeID: "EMP001", Date: day("2025-12-31"), Status: attendance.StatusHalfDay},
		attendance.Attendance{ID: "2", EmployeeID: "EMP001", Date: day("2026-01-03"), Status: attendance.StatusPresent},
		attendance.Attendance{ID: "3", EmployeeID: "EMP003", Date: day("2026-01-03"), Status: attendance.StatusPresent},
		attendance.Attendance{ID: "4", EmployeeID: "EMP001", Date: day("2026-01-01"), Status: attendance.StatusAbsent},
	)

	mine, err := repo.ListByEmployee(ctx, "EMP001")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, []string{"2", "4", "1"}, []string{mine[0].ID, mine[1].ID, mine[2].ID})

	none, err := repo.ListByEmployee(ctx, "EMP404")
	require.NoError(t, err)
	assert.Empty(t, none)

	today, err := repo.ListByDate(ctx, time.Date(2026, 1, 3, 15, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, today, 2)
}

func TestPayrollRepository(t *testing.T) {
	ctx := context.Background()
	rec := func(id, emp, month string, year int) payroll.PayrollRecord {
		return payroll.PayrollRecord{ID: id, EmployeeID: emp, Month: month, Year: year, NetSalary: decimal.NewFromInt(100)}
	}
	repo := NewPayrollRepository(
		rec("1", "EMP001", "December", 2025),
		rec("2", "EMP001", "November", 2025),
		rec("3", "EMP003", "December", 2025),
		rec("4", "EMP003", "December", 2024),
	)

	mine, err := repo.ListByEmployee(ctx, "EMP001")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	december, err := repo.ListByPeriod(ctx, "december", 2025)
	require.NoError(t, err)
	assert.Len(t, december, 2)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
