package domain

import (
	"errors"
	"strings"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserAdminNotFound = errors.New("user admin not found")
	ErrUserAdminExists   = errors.New("username already registered")

	ErrCompanyNotFound = errors.New("company not found")
	ErrCompanyExists   = errors.New("company already exists")

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")

	ErrAssociationNotFound = errors.New("association not found")
	ErrAssociationExists   = errors.New("association already exists")
)

// ValidationError aggregates every field violation found in a payload,
// not just the first one.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
