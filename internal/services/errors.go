package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate these
// into HTTP statuses; nothing below the handlers touches fiber.
var (
	// ErrNotFound: an id did not resolve to an existing row.
	ErrNotFound = errors.New("not found")
	// ErrDenied: the acting user is authenticated but does not own the target.
	ErrDenied = errors.New("forbidden")
	// ErrValidation: a required field is missing or malformed.
	ErrValidation = errors.New("invalid input")
	// ErrConflict: a uniqueness rule was violated (duplicate username) or a
	// forbidden state transition was requested.
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredential: password verification failed.
	ErrInvalidCredential = errors.New("invalid credentials")
	// ErrAssetIO: writing an uploaded asset failed; the record was not updated.
	ErrAssetIO = errors.New("asset write failed")
)
