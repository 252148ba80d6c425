package todo

import "errors"

var (
	ErrTodoNotFound = errors.New("todo not found")
	ErrTextRequired = errors.New("todo text is required")
)
