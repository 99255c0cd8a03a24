package drag

import "errors"

// Drag gesture errors
var (
	// ErrMalformedPayload indicates a drop payload that cannot be parsed or
	// is missing a required field. This is a UI-internal inconsistency, not
	// a user mistake: callers abort the transition silently and log it.
	ErrMalformedPayload = errors.New("malformed drag payload")

	// ErrNoGesture indicates a hover or drop arrived while no drag gesture
	// was in progress.
	ErrNoGesture = errors.New("no drag gesture in progress")

	// ErrUnknownStage indicates a drop target that is not in the registry.
	ErrUnknownStage = errors.New("drop target is not a known stage")
)
