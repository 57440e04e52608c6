package config

import "fmt"

// LoadError describes a configuration that could not be loaded.
type LoadError struct {
	// File is the path that failed to load; empty for in-memory documents.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	if e.File == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
