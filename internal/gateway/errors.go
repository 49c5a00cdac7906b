package gateway

import "errors"

// Domain-specific errors for gateway operations.
var (
	// ErrUnknownParameter is returned by Set for a name the registry does not know.
	ErrUnknownParameter = errors.New("gateway: unknown parameter")

	// ErrInvalidValue is returned by Set when the text does not parse as the
	// parameter's kind, or names an undeclared enumeration member.
	ErrInvalidValue = errors.New("gateway: invalid value")

	// ErrPollFailed wraps fetch and parse failures of a poll cycle.
	ErrPollFailed = errors.New("gateway: poll failed")

	// ErrWriteFailed wraps transport failures of Set.
	ErrWriteFailed = errors.New("gateway: write failed")
)
