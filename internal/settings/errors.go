package settings

import "errors"

// Settings errors
var (
	// ErrBadTransparency indicates a transparency outside 0..100.
	ErrBadTransparency = errors.New("column transparency must be between 0 and 100")

	// ErrBadTheme indicates an unknown background theme.
	ErrBadTheme = errors.New("unknown background theme")
)
