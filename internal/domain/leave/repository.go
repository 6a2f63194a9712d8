package leave

import (
	"context"
)

// LeaveRequestRepository stores leave requests newest first.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	// Update applies fn to the stored request atomically. If fn returns an
	// error nothing is written.
	Update(ctx context.Context, id string, fn func(*LeaveRequest) error) (LeaveRequest, error)
}

// LeaveRequestFilter narrows List results. Nil fields match everything.
type LeaveRequestFilter struct {
	EmployeeID *string
	Status     *LeaveRequestStatus
	// Processed selects requests whose status is not pending.
	Processed bool
}
