package models

import "errors"

// Domain-specific errors shared across the pipeline packages
var (
	// ErrRecordNotFound indicates an application record lookup by ID failed
	ErrRecordNotFound = errors.New("application record not found")

	// ErrSettingsNotFound indicates no settings row exists for the user yet
	ErrSettingsNotFound = errors.New("pipeline settings not found")
)
