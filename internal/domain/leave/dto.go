package leave

import (
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmployeeID   string `json:"-"`
	EmployeeName string `json:"-"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
}

// Validate checks the request. An empty leave_type defaults to paid.
func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("employee_id", r.EmployeeID)
	errs.Required("start_date", r.StartDate)
	errs.Required("end_date", r.EndDate)
	errs.Required("reason", r.Reason)

	if r.LeaveType == "" {
		r.LeaveType = string(LeaveTypePaid)
	}
	if !validator.IsInSlice(r.LeaveType, LeaveTypes) {
		errs.Add("leave_type", "leave_type must be one of: paid, sick, unpaid")
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !validator.IsEmpty(r.StartDate) && !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !validator.IsEmpty(r.EndDate) && !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	return errs.Err()
}

type ApproveRequestRequest struct {
	ID           string  `json:"-"`
	ReviewerName string  `json:"-"`
	Comment      *string `json:"comment,omitempty"`
}

func (r *ApproveRequestRequest) Validate() error {
	var errs validator.ValidationErrors
	errs.Required("id", r.ID)
	errs.Required("reviewer", r.ReviewerName)
	return errs.Err()
}

type RejectRequestRequest struct {
	ID           string `json:"-"`
	ReviewerName string `json:"-"`
	Comment      string `json:"comment"`
}

// Validate requires a comment: a rejection must carry a reason.
func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors
	errs.Required("id", r.ID)
	errs.Required("reviewer", r.ReviewerName)
	errs.Required("comment", r.Comment)
	return errs.Err()
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	AppliedOn     string  `json:"applied_on"`
	ReviewedBy    *string `json:"reviewed_by,omitempty"`
	ReviewComment *string `json:"review_comment,omitempty"`
}

func NewLeaveRequestResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:            l.ID,
		EmployeeID:    l.EmployeeID,
		EmployeeName:  l.EmployeeName,
		LeaveType:     string(l.LeaveType),
		StartDate:     l.StartDate.Format(validator.DateLayout),
		EndDate:       l.EndDate.Format(validator.DateLayout),
		Reason:        l.Reason,
		Status:        string(l.Status),
		AppliedOn:     l.AppliedOn.Format(validator.DateLayout),
		ReviewedBy:    l.ReviewedBy,
		ReviewComment: l.ReviewComment,
	}
}

type LeaveSummary struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type ListLeaveRequestResponse struct {
	Requests []LeaveRequestResponse `json:"requests"`
	Summary  LeaveSummary           `json:"summary"`
}

// NewListLeaveRequestResponse keeps the order of requests and counts them by status.
func NewListLeaveRequestResponse(requests []LeaveRequest) ListLeaveRequestResponse {
	resp := ListLeaveRequestResponse{
		Requests: make([]LeaveRequestResponse, 0, len(requests)),
	}
	for _, l := range requests {
		resp.Requests = append(resp.Requests, NewLeaveRequestResponse(l))
		switch l.Status {
		case LeaveRequestStatusPending:
			resp.Summary.Pending++
		case LeaveRequestStatusApproved:
			resp.Summary.Approved++
		case LeaveRequestStatusRejected:
			resp.Summary.Rejected++
		}
	}
	resp.Summary.Total = len(requests)
	return resp
}
