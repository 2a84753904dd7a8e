package service

import "errors"

// Common service errors, mapped to HTTP statuses at the handler boundary.
var (
	// ErrMissingCredentials is returned when username or password is empty.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrUsernameTaken is returned when the username already exists in the
	// target role namespace.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned for both unknown usernames and
	// wrong passwords. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
