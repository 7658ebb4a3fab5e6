// Package service implements the per-domain façades composing the generic
// data managers with domain-specific rules.
package service

import "errors"

// Sentinel errors mapped to HTTP statuses at the API boundary.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect password")
)
