package memory

import (
	"context"
	"sync"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
)

type leaveRequestRepositoryImpl struct {
	mu       sync.RWMutex
	requests []leave.LeaveRequest // newest first
}

// NewLeaveRequestRepository returns a leave request store. seed must already
// be ordered newest first.
func NewLeaveRequestRepository(seed ...leave.LeaveRequest) leave.LeaveRequestRepository {
	requests := make([]leave.LeaveRequest, 0, len(seed))
	for _, lr := range seed {
		requests = append(requests, cloneLeaveRequest(lr))
	}
	return &leaveRequestRepositoryImpl{requests: requests}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append([]leave.LeaveRequest{cloneLeaveRequest(request)}, r.requests...)
	return cloneLeaveRequest(request), nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return cloneLeaveRequest(r.requests[i]), nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]leave.LeaveRequest, 0, len(r.requests))
	for _, lr := range r.requests {
		if filter.EmployeeID != nil && lr.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && lr.Status != *filter.Status {
			continue
		}
		if filter.Processed && lr.IsPending() {
			continue
		}
		result = append(result, cloneLeaveRequest(lr))
	}
	return result, nil
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, id string, fn func(*leave.LeaveRequest) error) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}

	updated := cloneLeaveRequest(r.requests[i])
	if err := fn(&updated); err != nil {
		return leave.LeaveRequest{}, err
	}
	r.requests[i] = updated
	return cloneLeaveRequest(updated), nil
}

// indexOf returns the position of id or -1. Callers hold r.mu.
func (r *leaveRequestRepositoryImpl) indexOf(id string) int {
	for i, lr := range r.requests {
		if lr.ID == id {
			return i
		}
	}
	return -1
}

// cloneLeaveRequest copies the pointer fields so callers never share them
// with the store.
func cloneLeaveRequest(lr leave.LeaveRequest) leave.LeaveRequest {
	if lr.ReviewedBy != nil {
		v := *lr.ReviewedBy
		lr.ReviewedBy = &v
	}
	if lr.ReviewComment != nil {
		v := *lr.ReviewComment
		lr.ReviewComment = &v
	}
	return lr
}
