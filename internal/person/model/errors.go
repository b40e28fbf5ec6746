package model

import "errors"

var (
	// ErrPersonNotFound indicates that the requested person does not exist.
	ErrPersonNotFound = errors.New("person not found")
	// ErrInvalidPerson indicates a field failed validation. It is wrapped with the detail.
	ErrInvalidPerson = errors.New("invalid person")
	// ErrInvalidReference indicates that the referenced team or role does not exist.
	ErrInvalidReference = errors.New("referenced team or role does not exist")
)
