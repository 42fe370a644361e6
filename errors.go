package pagemark

import "errors"

// Configuration errors returned by Options.Validate. Invalid configuration
// aborts conversion immediately; everything after validation fails soft.
var (
	// ErrInvalidTableStrategy is returned for an unrecognized table
	// detection strategy name
	ErrInvalidTableStrategy = errors.New("invalid table strategy")

	// ErrInvalidImageMode is returned for an unrecognized image output mode
	ErrInvalidImageMode = errors.New("invalid image mode")

	// ErrInvalidImageFormat is returned for an unsupported image format
	ErrInvalidImageFormat = errors.New("invalid image format")

	// ErrInvalidMargins is returned when margins are negative or leave no
	// usable page area
	ErrInvalidMargins = errors.New("invalid margins")

	// ErrInvalidHeaderStrategy is returned for an unrecognized header
	// identification strategy name
	ErrInvalidHeaderStrategy = errors.New("invalid header strategy")

	// ErrInvalidHeaderLevel is returned when the maximum header level is
	// outside 1 through 6
	ErrInvalidHeaderLevel = errors.New("invalid maximum header level")

	// ErrInvalidDPI is returned for a non-positive rendering resolution
	ErrInvalidDPI = errors.New("invalid dpi")

	// ErrNilDocument is returned when conversion is invoked without a
	// document
	ErrNilDocument = errors.New("nil document")
)
