package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument indicates a required collaborator was missing or malformed.
	ErrInvalidArgument = errors.New("invalid argument")
)
