package core

import "errors"

var (
	// ErrNotReady is returned by every operation attempted before hydration completes.
	ErrNotReady = errors.New("content is still loading")
	// ErrResetNotConfirmed is returned when a reset is requested without confirmation.
	ErrResetNotConfirmed = errors.New("reset requires explicit confirmation")
	// ErrMalformedDocument is returned when the persisted document cannot be parsed.
	ErrMalformedDocument = errors.New("persisted document is malformed")
	// ErrPersist is returned when the in-memory change succeeded but the slot write did not.
	ErrPersist = errors.New("failed to persist document")
	// ErrInvalidCredentials is returned by the login check.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
