package payroll

import "context"

type PayrollRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error)
	ListByPeriod(ctx context.Context, month string, year int) ([]PayrollRecord, error)
	List(ctx context.Context) ([]PayrollRecord, error)
}
