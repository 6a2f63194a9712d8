package payroll

import (
	"context"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	user.UserRepository
}

func NewPayrollService(payrollRepository payroll.PayrollRepository, userRepository user.UserRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository: payrollRepository,
		UserRepository:    userRepository,
	}
}

// GetMyPayroll implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetMyPayroll(ctx context.Context, employeeID string) (payroll.ListPayrollResponse, error) {
	if validator.IsEmpty(employeeID) {
		return payroll.ListPayrollResponse{}, payroll.ErrEmployeeIDRequired
	}
	records, err := p.PayrollRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payroll: %w", err)
	}
	return payroll.NewListPayrollResponse(records), nil
}

// GetEmployeePayroll implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetEmployeePayroll(ctx context.Context, employeeID string) (payroll.ListPayrollResponse, error) {
	if validator.IsEmpty(employeeID) {
		return payroll.ListPayrollResponse{}, payroll.ErrEmployeeIDRequired
	}
	if _, err := p.UserRepository.GetByEmployeeID(ctx, employeeID); err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return p.GetMyPayroll(ctx, employeeID)
}

// GetPeriodSummary implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetPeriodSummary(ctx context.Context, req payroll.PeriodSummaryRequest) (payroll.ListPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ListPayrollResponse{}, err
	}
	records, err := p.PayrollRepository.ListByPeriod(ctx, req.Month, req.ParsedYear())
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payroll for %s %d: %w", req.Month, req.ParsedYear(), err)
	}
	return payroll.NewListPayrollResponse(records), nil
}
