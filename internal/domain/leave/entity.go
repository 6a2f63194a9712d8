package leave

import (
	"time"
)

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "paid"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
)

// LeaveTypes lists every accepted leave type.
var LeaveTypes = []string{string(LeaveTypePaid), string(LeaveTypeSick), string(LeaveTypeUnpaid)}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// DefaultApproveComment is recorded when an approval carries no comment.
const DefaultApproveComment = "Approved"

// LeaveRequest entity
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	EmployeeName string // snapshot taken at apply time

	LeaveType LeaveType
	StartDate time.Time
	EndDate   time.Time
	Reason    string

	Status        LeaveRequestStatus
	AppliedOn     time.Time
	ReviewedBy    *string
	ReviewComment *string
}

// IsPending reports whether the request still awaits a decision.
func (l *LeaveRequest) IsPending() bool {
	return l.Status == LeaveRequestStatusPending
}

// Approve moves a pending request to approved.
func (l *LeaveRequest) Approve(reviewer string, comment *string) error {
	if !l.IsPending() {
		return ErrLeaveRequestAlreadyProcessed
	}
	note := DefaultApproveComment
	if comment != nil && *comment != "" {
		note = *comment
	}
	l.Status = LeaveRequestStatusApproved
	l.ReviewedBy = &reviewer
	l.ReviewComment = &note
	return nil
}

// Reject moves a pending request to rejected. comment must be non-empty.
func (l *LeaveRequest) Reject(reviewer string, comment string) error {
	if !l.IsPending() {
		return ErrLeaveRequestAlreadyProcessed
	}
	l.Status = LeaveRequestStatusRejected
	l.ReviewedBy = &reviewer
	l.ReviewComment = &comment
	return nil
}
