// Package shared defines constants and sentinel errors used across the
// filedepot server layers. Callers should use errors.Is to match these values.
package shared

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorInternal     = errors.New("internal error")

	// ErrorUnavailable marks a failed call to an external dependency
	// (database, session store, blob store). It is surfaced to clients as a
	// generic server error.
	ErrorUnavailable = errors.New("dependency unavailable")

	// ErrorValidation is the base for all user-correctable input errors.
	// Specific field errors wrap it, so handlers can match the class with
	// errors.Is(err, ErrorValidation) and the concrete error individually.
	ErrorValidation = errors.New("validation error")

	ErrorMissingEmail    = fmt.Errorf("%w: missing email", ErrorValidation)
	ErrorMissingPassword = fmt.Errorf("%w: missing password", ErrorValidation)
	ErrorMissingName     = fmt.Errorf("%w: missing name", ErrorValidation)
	ErrorMissingType     = fmt.Errorf("%w: missing type", ErrorValidation)
	ErrorMissingData     = fmt.Errorf("%w: missing data", ErrorValidation)
	ErrorParentNotFound  = fmt.Errorf("%w: parent not found", ErrorValidation)

	// ErrorFolderHasNoData is returned when content is requested for a
	// folder record. Folders never carry stored bytes.
	ErrorFolderHasNoData = fmt.Errorf("%w: a folder doesn't have content", ErrorValidation)
)
