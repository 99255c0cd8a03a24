package registry

import "errors"

// Stage registry errors
var (
	// Validation errors
	ErrEmptyName   = errors.New("stage name cannot be empty")
	ErrNameTooLong = errors.New("stage name cannot exceed 50 characters")
	ErrBadColor    = errors.New("unknown stage color")

	// Business logic errors
	ErrStageNotFound = errors.New("stage not found")
	ErrBuiltinStage  = errors.New("built-in stages cannot be removed")
)
