package payroll

import "context"

type PayrollService interface {
	GetMyPayroll(ctx context.Context, employeeID string) (ListPayrollResponse, error)
	GetEmployeePayroll(ctx context.Context, employeeID string) (ListPayrollResponse, error)
	GetPeriodSummary(ctx context.Context, req PeriodSummaryRequest) (ListPayrollResponse, error)
}
