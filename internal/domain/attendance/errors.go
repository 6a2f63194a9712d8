package attendance

import "errors"

var (
	ErrEmployeeIDRequired = errors.New("employee_id is required")
)
