package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeExists        = errors.New("employee already registered in this company")
	ErrEmployeeInactive      = errors.New("employee is inactive")
	ErrEmployeeNotVerified   = errors.New("employee is not verified")
	ErrEmployeeAlreadyDone   = errors.New("employee verification already processed")
	ErrNoAssignedRole        = errors.New("employee has no assigned role")
	ErrDesignationRequired   = errors.New("designation is required")
	ErrRoleOutsideCompany    = errors.New("role does not belong to this company")
	ErrCannotVerifyWithoutRole = errors.New("verifying an employee requires a role")
)
