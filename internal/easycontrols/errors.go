package easycontrols

import "errors"

// Domain-specific errors for the device transport.
var (
	// ErrUnauthorized means the unit rejected the session or the password.
	ErrUnauthorized = errors.New("easycontrols: unauthorized")

	// ErrRequestFailed wraps transport failures and unexpected HTTP statuses.
	ErrRequestFailed = errors.New("easycontrols: request failed")

	// ErrInvalidPage is returned for an empty or path-like page name.
	ErrInvalidPage = errors.New("easycontrols: invalid page name")

	// ErrNothingToWrite is returned by Write for an empty value set.
	ErrNothingToWrite = errors.New("easycontrols: no values to write")
)
