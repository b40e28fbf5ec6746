package model

import "errors"

var (
	// ErrProjectNotFound indicates that the requested project does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectExists indicates that another project already uses the name.
	ErrProjectExists = errors.New("project already exists")
	// ErrInvalidProject indicates a field failed validation. It is wrapped with the detail.
	ErrInvalidProject = errors.New("invalid project")
	// ErrInvalidReference indicates that the referenced client or team does not exist.
	ErrInvalidReference = errors.New("referenced client or team does not exist")
)
