package domain

import "errors"

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")
)
