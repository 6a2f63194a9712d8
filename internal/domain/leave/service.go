package leave

import (
	"context"
)

type LeaveService interface {
	ApplyLeave(ctx context.Context, req ApplyLeaveRequest) (LeaveRequestResponse, error)
	ApproveLeaveRequest(ctx context.Context, req ApproveRequestRequest) (LeaveRequestResponse, error)
	RejectLeaveRequest(ctx context.Context, req RejectRequestRequest) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListMyLeaveRequests(ctx context.Context, employeeID string) (ListLeaveRequestResponse, error)
	ListPendingLeaveRequests(ctx context.Context) (ListLeaveRequestResponse, error)
	ListProcessedLeaveRequests(ctx context.Context) (ListLeaveRequestResponse, error)
}
