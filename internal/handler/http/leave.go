package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	var (
		resp leave.ListLeaveRequestResponse
		err  error
	)

	switch status := r.URL.Query().Get("status"); status {
	case "", "pending":
		resp, err = l.leaveService.ListPendingLeaveRequests(r.Context())
	case "processed":
		resp, err = l.leaveService.ListProcessedLeaveRequests(r.Context())
	default:
		response.BadRequest(w, "Invalid status filter", map[string]string{"status": "status must be one of: pending, processed"})
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetMyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	current := sessionUser(r)
	if current == nil {
		response.HandleError(w, auth.ErrNotAuthenticated)
		return
	}

	resp, err := l.leaveService.ListMyLeaveRequests(r.Context(), current.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	current := sessionUser(r)
	if current == nil {
		response.HandleError(w, auth.ErrNotAuthenticated)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	resp, err := l.leaveService.GetLeaveRequest(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Employees may only see their own requests
	if !current.Can(user.PermissionLeaveViewAll) && resp.EmployeeID != current.EmployeeID {
		response.HandleError(w, leave.ErrLeaveRequestAccessDenied)
		return
	}

	response.Success(w, resp)
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	current := sessionUser(r)
	if current == nil {
		response.HandleError(w, auth.ErrNotAuthenticated)
		return
	}

	var req leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Identity always comes from the session, never the body
	req.EmployeeID = current.EmployeeID
	req.EmployeeName = current.Name

	resp, err := l.leaveService.ApplyLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request submitted", "id", resp.ID, "employee_id", resp.EmployeeID)
	response.Created(w, "Leave request submitted successfully", resp)
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	current := sessionUser(r)
	if current == nil {
		response.HandleError(w, auth.ErrNotAuthenticated)
		return
	}

	var req leave.ApproveRequestRequest

	// The body is optional: an approval needs no comment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("ApproveRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.ReviewerName = current.Name

	resp, err := l.leaveService.ApproveLeaveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request approved", "id", resp.ID, "reviewer", current.EmployeeID)
	response.SuccessWithMessage(w, "Leave request approved successfully", resp)
}

// RejectRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	current := sessionUser(r)
	if current == nil {
		response.HandleError(w, auth.ErrNotAuthenticated)
		return
	}

	var req leave.RejectRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RejectRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.ReviewerName = current.Name

	resp, err := l.leaveService.RejectLeaveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request rejected", "id", resp.ID, "reviewer", current.EmployeeID)
	response.SuccessWithMessage(w, "Leave request rejected successfully", resp)
}
