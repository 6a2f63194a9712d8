package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	now func() time.Time
}

func NewLeaveService(leaveRequestRepository leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
		now:                    time.Now,
	}
}

// ApplyLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) ApplyLeave(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	// Validate already rejected malformed dates.
	startDate, _ := time.Parse(validator.DateLayout, req.StartDate)
	endDate, _ := time.Parse(validator.DateLayout, req.EndDate)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to generate leave request id: %w", err)
	}

	now := l.now()
	request := leave.LeaveRequest{
		ID:           id.String(),
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		LeaveType:    leave.LeaveType(req.LeaveType),
		StartDate:    startDate,
		EndDate:      endDate,
		Reason:       strings.TrimSpace(req.Reason),
		Status:       leave.LeaveRequestStatusPending,
		AppliedOn:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}

	created, err := l.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return leave.NewLeaveRequestResponse(created), nil
}

// ApproveLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, req leave.ApproveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := l.LeaveRequestRepository.Update(ctx, req.ID, func(lr *leave.LeaveRequest) error {
		return lr.Approve(req.ReviewerName, req.Comment)
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to approve leave request %s: %w", req.ID, err)
	}
	return leave.NewLeaveRequestResponse(updated), nil
}

// RejectLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, req leave.RejectRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := l.LeaveRequestRepository.Update(ctx, req.ID, func(lr *leave.LeaveRequest) error {
		return lr.Reject(req.ReviewerName, strings.TrimSpace(req.Comment))
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to reject leave request %s: %w", req.ID, err)
	}
	return leave.NewLeaveRequestResponse(updated), nil
}

// GetLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request %s: %w", id, err)
	}
	return leave.NewLeaveRequestResponse(request), nil
}

// ListMyLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMyLeaveRequests(ctx context.Context, employeeID string) (leave.ListLeaveRequestResponse, error) {
	return l.list(ctx, leave.LeaveRequestFilter{EmployeeID: &employeeID})
}

// ListPendingLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListPendingLeaveRequests(ctx context.Context) (leave.ListLeaveRequestResponse, error) {
	pending := leave.LeaveRequestStatusPending
	return l.list(ctx, leave.LeaveRequestFilter{Status: &pending})
}

// ListProcessedLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListProcessedLeaveRequests(ctx context.Context) (leave.ListLeaveRequestResponse, error) {
	return l.list(ctx, leave.LeaveRequestFilter{Processed: true})
}

func (l *LeaveServiceImpl) list(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	requests, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.NewListLeaveRequestResponse(requests), nil
}
