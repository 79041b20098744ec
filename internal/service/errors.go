package service

import "errors"

// Sentinel errors returned by the auth and task services. Handlers map
// these to flash messages or silent redirects at the HTTP boundary.
var (
	ErrEmptyField         = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyContent       = errors.New("task content is required")
	ErrInvalidDate        = errors.New("due date must be in YYYY-MM-DD format")
	ErrTaskNotFound       = errors.New("task not found")
	ErrNotOwner           = errors.New("task belongs to another user")
)
