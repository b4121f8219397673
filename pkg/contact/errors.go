package contact

import "errors"

// Errors attached to repository log records.
var (
	// ErrNotFound indicates no stored contact has the requested id
	ErrNotFound = errors.New("no contact with the given id")

	// ErrEmptyStore indicates the store could not be read, so there is nothing to remove
	ErrEmptyStore = errors.New("no contacts")

	// ErrInvalid indicates a new contact failed field validation
	ErrInvalid = errors.New("invalid contact")
)
