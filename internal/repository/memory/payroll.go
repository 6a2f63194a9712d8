package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
)

type payrollRepositoryImpl struct {
	mu      sync.RWMutex
	records []payroll.PayrollRecord
}

func NewPayrollRepository(seed ...payroll.PayrollRecord) payroll.PayrollRepository {
	records := make([]payroll.PayrollRecord, len(seed))
	copy(records, seed)
	return &payrollRepositoryImpl{records: records}
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	return r.filter(func(p payroll.PayrollRecord) bool { return p.EmployeeID == employeeID }), nil
}

// ListByPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByPeriod(ctx context.Context, month string, year int) ([]payroll.PayrollRecord, error) {
	return r.filter(func(p payroll.PayrollRecord) bool {
		return p.Year == year && strings.EqualFold(p.Month, month)
	}), nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context) ([]payroll.PayrollRecord, error) {
	return r.filter(func(payroll.PayrollRecord) bool { return true }), nil
}

func (r *payrollRepositoryImpl) filter(match func(payroll.PayrollRecord) bool) []payroll.PayrollRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]payroll.PayrollRecord, 0)
	for _, p := range r.records {
		if match(p) {
			result = append(result, p)
		}
	}
	return result
}
