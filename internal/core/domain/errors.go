package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for every failure class the API distinguishes. The HTTP
// layer maps these to status codes in one place; services never pick codes.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrVehicleNotFound    = errors.New("car not found")
)

// FieldError is a validation failure tied to a named input field. It unwraps
// to ErrValidation so callers can match the class with errors.Is.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrValidation }
