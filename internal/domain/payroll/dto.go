package payroll

import (
	"strconv"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PeriodSummaryRequest struct {
	Month string `json:"month"`
	Year  string `json:"year"`

	year int
}

// Validate checks month is an English month name and year a positive integer.
func (r *PeriodSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("month", r.Month)
	if !validator.IsEmpty(r.Month) {
		if _, err := time.Parse("January", r.Month); err != nil {
			errs.Add("month", "month must be a full month name, e.g. December")
		}
	}

	errs.Required("year", r.Year)
	if !validator.IsEmpty(r.Year) {
		y, err := strconv.Atoi(r.Year)
		if err != nil || y <= 0 {
			errs.Add("year", "year must be a positive integer")
		} else {
			r.year = y
		}
	}

	return errs.Err()
}

// ParsedYear returns the year after a successful Validate.
func (r *PeriodSummaryRequest) ParsedYear() int {
	return r.year
}

type PayrollResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Month       string          `json:"month"`
	Year        int             `json:"year"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"net_salary"`
	Status      string          `json:"status"`
}

func NewPayrollResponse(p PayrollRecord) PayrollResponse {
	return PayrollResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		Month:       p.Month,
		Year:        p.Year,
		BasicSalary: p.BasicSalary,
		Allowances:  p.Allowances,
		Deductions:  p.Deductions,
		NetSalary:   p.NetSalary,
		Status:      string(p.Status),
	}
}

type PayrollTotals struct {
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"net_salary"`
}

type ListPayrollResponse struct {
	Records []PayrollResponse `json:"records"`
	Totals  PayrollTotals     `json:"totals"`
}

func NewListPayrollResponse(records []PayrollRecord) ListPayrollResponse {
	resp := ListPayrollResponse{
		Records: make([]PayrollResponse, 0, len(records)),
		Totals: PayrollTotals{
			BasicSalary: decimal.Zero,
			Allowances:  decimal.Zero,
			Deductions:  decimal.Zero,
			NetSalary:   decimal.Zero,
		},
	}
	for _, p := range records {
		resp.Records = append(resp.Records, NewPayrollResponse(p))
		resp.Totals.BasicSalary = resp.Totals.BasicSalary.Add(p.BasicSalary)
		resp.Totals.Allowances = resp.Totals.Allowances.Add(p.Allowances)
		resp.Totals.Deductions = resp.Totals.Deductions.Add(p.Deductions)
		resp.Totals.NetSalary = resp.Totals.NetSalary.Add(p.NetSalary)
	}
	return resp
}
