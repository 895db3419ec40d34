package task

import "errors"

var (
	ErrNotFound            = errors.New("task not found")
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
)
