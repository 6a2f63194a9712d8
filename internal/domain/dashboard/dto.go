package dashboard

import (
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
)

// ========== ADMIN DASHBOARD ==========

// AdminDashboardResponse is the organisation-wide overview shown to admins
type AdminDashboardResponse struct {
	TotalEmployees int64                        `json:"total_employees"`
	PendingLeaves  int64                        `json:"pending_leaves"`
	PresentToday   int64                        `json:"present_today"`
	Date           string                       `json:"date"`
	PendingList    []leave.LeaveRequestResponse `json:"pending_list"`
}

// ========== EMPLOYEE DASHBOARD ==========

// EmployeeDashboardResponse is the personal overview shown to employees
type EmployeeDashboardResponse struct {
	PresentDays      int64                           `json:"present_days"`
	LeaveSummary     leave.LeaveSummary              `json:"leave_summary"`
	RecentLeaves     []leave.LeaveRequestResponse    `json:"recent_leaves"`
	RecentAttendance []attendance.AttendanceResponse `json:"recent_attendance"`
}

// DashboardResponse carries exactly one of the two views, chosen by role
type DashboardResponse struct {
	Role     string                     `json:"role"`
	Admin    *AdminDashboardResponse    `json:"admin,omitempty"`
	Employee *EmployeeDashboardResponse `json:"employee,omitempty"`
}
