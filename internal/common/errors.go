// Package common defines sentinel errors shared by the CREAMI packages.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Write path of the backing store rejected a value (quota, serialization).
	ErrStorageWrite = errors.New("storage write failed")

	// Validation errors.
	ErrValidation   = errors.New("validation error")
	ErrInvalidScope = errors.New("invalid scope")
)
