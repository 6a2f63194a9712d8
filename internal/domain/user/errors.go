package user

import "errors"

var (
	ErrUserNotFound               = errors.New("user not found")
	ErrUserEmailExists            = errors.New("email already registered")
	ErrEmployeeIDExists           = errors.New("employee ID already registered")
	ErrInvalidRole                = errors.New("invalid role")
	ErrInsufficientPermissions    = errors.New("insufficient permissions")
	ErrSelfRegistrationNotAllowed = errors.New("employees cannot self-register, please contact your HR/Admin for credentials")
)
