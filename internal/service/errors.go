// Package service provides business logic for the application.
package service

import (
	"errors"
	"strings"
)

// Service errors. Handlers map these to HTTP status codes in one place.
var (
	ErrMissingCredentials = errors.New("email and password are required fields")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("a unique value for the email field is required, the address provided already exists")
	ErrJobNotFound        = errors.New("no job with the provided ID")
	ErrEmptyJobFields     = errors.New("company or position fields cannot be empty")
)

// ValidationError carries one message per violated field constraint.
type ValidationError struct {
	Messages []string
}

// Error joins the field messages into a single string.
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ",")
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
