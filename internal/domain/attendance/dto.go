package attendance

import "github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	Status     string  `json:"status"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format(validator.DateLayout),
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Status:     string(a.Status),
	}
}

type AttendanceSummary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	HalfDay int `json:"half_day"`
	OnLeave int `json:"on_leave"`
}

type ListAttendanceResponse struct {
	Records []AttendanceResponse `json:"records"`
	Summary AttendanceSummary    `json:"summary"`
}

func NewListAttendanceResponse(records []Attendance) ListAttendanceResponse {
	resp := ListAttendanceResponse{Records: make([]AttendanceResponse, 0, len(records))}
	for _, a := range records {
		resp.Records = append(resp.Records, NewAttendanceResponse(a))
		switch a.Status {
		case StatusPresent:
			resp.Summary.Present++
		case StatusAbsent:
			resp.Summary.Absent++
		case StatusHalfDay:
			resp.Summary.HalfDay++
		case StatusOnLeave:
			resp.Summary.OnLeave++
		}
	}
	return resp
}
