package http

import (
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetMy(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
	}
}

// GetMy implements PayrollHandler.
func (p *PayrollHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	current := sessionUser(r)
	if current == nil {
		response.HandleError(w, auth.ErrNotAuthenticated)
		return
	}

	resp, err := p.payrollService.GetMyPayroll(r.Context(), current.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements PayrollHandler.
func (p *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := p.payrollService.GetEmployeePayroll(r.Context(), r.URL.Query().Get("employee_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Summary implements PayrollHandler.
func (p *PayrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := payroll.PeriodSummaryRequest{
		Month: query.Get("month"),
		Year:  query.Get("year"),
	}

	resp, err := p.payrollService.GetPeriodSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
