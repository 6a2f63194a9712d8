package fixtures

import (
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(fmt.Sprintf("fixtures: bad date %q: %v", s, err))
	}
	return t
}

// ==========================================
// SEEDED DATA RESULT
// ==========================================

// Dataset is the demo organisation loaded at startup.
type Dataset struct {
	Users         []user.User
	Attendance    []attendance.Attendance
	LeaveRequests []leave.LeaveRequest // newest first
	Payroll       []payroll.PayrollRecord
}

// Load builds the demo dataset. Every seeded user signs in with password,
// hashed at the given bcrypt cost.
func Load(password string, cost int) (*Dataset, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	users := DefaultUsers()
	for i := range users {
		users[i].PasswordHash = string(hash)
	}

	return &Dataset{
		Users:         users,
		Attendance:    DefaultAttendance(),
		LeaveRequests: DefaultLeaveRequests(),
		Payroll:       DefaultPayroll(),
	}, nil
}

// ==========================================
// USERS
// ==========================================

func DefaultUsers() []user.User {
	createdAt := date("2022-06-01")
	return []user.User{
		{
			ID:           "1",
			EmployeeID:   "EMP001",
			Email:        "john.doe@dayflow.com",
			Name:         "John Doe",
			Role:         user.RoleEmployee,
			Department:   "Engineering",
			Designation:  "Software Developer",
			Phone:        "+1 234 567 8901",
			Address:      "123 Tech Street, Silicon Valley, CA",
			JoinDate:     date("2023-01-15"),
			ProfileImage: strPtr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face"),
			CreatedAt:    createdAt,
		},
		{
			ID:           "2",
			EmployeeID:   "EMP002",
			Email:        "sarah.admin@dayflow.com",
			Name:         "Sarah Johnson",
			Role:         user.RoleAdmin,
			Department:   "Human Resources",
			Designation:  "HR Manager",
			Phone:        "+1 234 567 8902",
			Address:      "456 HR Avenue, Silicon Valley, CA",
			JoinDate:     date("2022-06-01"),
			ProfileImage: strPtr("https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop&crop=face"),
			CreatedAt:    createdAt,
		},
		{
			ID:           "3",
			EmployeeID:   "EMP003",
			Email:        "mike.wilson@dayflow.com",
			Name:         "Mike Wilson",
			Role:         user.RoleEmployee,
			Department:   "Marketing",
			Designation:  "Marketing Specialist",
			Phone:        "+1 234 567 8903",
			Address:      "789 Marketing Blvd, Silicon Valley, CA",
			JoinDate:     date("2023-03-20"),
			ProfileImage: strPtr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face"),
			CreatedAt:    createdAt,
		},
		{
			ID:           "4",
			EmployeeID:   "EMP004",
			Email:        "emily.chen@dayflow.com",
			Name:         "Emily Chen",
			Role:         user.RoleEmployee,
			Department:   "Finance",
			Designation:  "Financial Analyst",
			Phone:        "+1 234 567 8904",
			Address:      "321 Finance Way, Silicon Valley, CA",
			JoinDate:     date("2023-05-10"),
			ProfileImage: strPtr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face"),
			CreatedAt:    createdAt,
		},
	}
}

// ==========================================
// ATTENDANCE
// ==========================================

func DefaultAttendance() []attendance.Attendance {
	return []attendance.Attendance{
		{ID: "1", EmployeeID: "EMP001", Date: date("2026-01-03"), CheckIn: strPtr("09:00"), CheckOut: strPtr("18:00"), Status: attendance.StatusPresent},
		{ID: "2", EmployeeID: "EMP001", Date: date("2026-01-02"), CheckIn: strPtr("09:15"), CheckOut: strPtr("18:30"), Status: attendance.StatusPresent},
		{ID: "3", EmployeeID: "EMP001", Date: date("2026-01-01"), Status: attendance.StatusAbsent},
		{ID: "4", EmployeeID: "EMP001", Date: date("2025-12-31"), CheckIn: strPtr("09:00"), CheckOut: strPtr("13:00"), Status: attendance.StatusHalfDay},
		{ID: "5", EmployeeID: "EMP001", Date: date("2025-12-30"), Status: attendance.StatusOnLeave},
		{ID: "6", EmployeeID: "EMP003", Date: date("2026-01-03"), CheckIn: strPtr("08:45"), CheckOut: strPtr("17:45"), Status: attendance.StatusPresent},
		{ID: "7", EmployeeID: "EMP003", Date: date("2026-01-02"), CheckIn: strPtr("09:00"), CheckOut: strPtr("18:00"), Status: attendance.StatusPresent},
		{ID: "8", EmployeeID: "EMP004", Date: date("2026-01-03"), CheckIn: strPtr("09:30"), CheckOut: strPtr("18:30"), Status: attendance.StatusPresent},
		{ID: "9", EmployeeID: "EMP004", Date: date("2026-01-02"), Status: attendance.StatusOnLeave},
	}
}

// ==========================================
// LEAVE REQUESTS
// ==========================================

func DefaultLeaveRequests() []leave.LeaveRequest {
	return []leave.LeaveRequest{
		{
			ID:           "1",
			EmployeeID:   "EMP001",
			EmployeeName: "John Doe",
			LeaveType:    leave.LeaveTypePaid,
			StartDate:    date("2026-01-10"),
			EndDate:      date("2026-01-12"),
			Reason:       "Family vacation",
			Status:       leave.LeaveRequestStatusPending,
			AppliedOn:    date("2026-01-02"),
		},
		{
			ID:            "2",
			EmployeeID:    "EMP003",
			EmployeeName:  "Mike Wilson",
			LeaveType:     leave.LeaveTypeSick,
			StartDate:     date("2026-01-05"),
			EndDate:       date("2026-01-06"),
			Reason:        "Medical appointment",
			Status:        leave.LeaveRequestStatusApproved,
			AppliedOn:     date("2026-01-03"),
			ReviewedBy:    strPtr("Sarah Johnson"),
			ReviewComment: strPtr("Approved. Get well soon!"),
		},
		{
			ID:           "3",
			EmployeeID:   "EMP004",
			EmployeeName: "Emily Chen",
			LeaveType:    leave.LeaveTypeUnpaid,
			StartDate:    date("2026-01-15"),
			EndDate:      date("2026-01-20"),
			Reason:       "Personal reasons",
			Status:       leave.LeaveRequestStatusPending,
			AppliedOn:    date("2026-01-01"),
		},
	}
}

// ==========================================
// PAYROLL
// ==========================================

func DefaultPayroll() []payroll.PayrollRecord {
	record := func(id, employeeID, month string, basic, allowances, deductions, net int64, status payroll.PayrollStatus) payroll.PayrollRecord {
		return payroll.PayrollRecord{
			ID:          id,
			EmployeeID:  employeeID,
			Month:       month,
			Year:        2025,
			BasicSalary: decimal.NewFromInt(basic),
			Allowances:  decimal.NewFromInt(allowances),
			Deductions:  decimal.NewFromInt(deductions),
			NetSalary:   decimal.NewFromInt(net),
			Status:      status,
		}
	}
	return []payroll.PayrollRecord{
		record("1", "EMP001", "December", 5000, 800, 450, 5350, payroll.PayrollStatusPaid),
		record("2", "EMP001", "November", 5000, 800, 450, 5350, payroll.PayrollStatusPaid),
		record("3", "EMP003", "December", 4500, 600, 380, 4720, payroll.PayrollStatusPaid),
		record("4", "EMP004", "December", 5500, 900, 520, 5880, payroll.PayrollStatusPending),
	}
}
