package role

import "errors"

var (
	ErrRoleNotFound     = errors.New("role not found")
	ErrRoleNameExists   = errors.New("role name already exists in this company")
	ErrRoleNameRequired = errors.New("role name is required")
	ErrRoleInactive     = errors.New("role is inactive")
	ErrRoleInUse        = errors.New("role is still assigned to employees")
	ErrUnknownModule    = errors.New("unknown module in permission matrix")
)
