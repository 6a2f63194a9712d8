package payroll

import "errors"

var ErrEmployeeIDRequired = errors.New("employee_id is required")
