package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrEmptyDictionary means a full run produced zero entries, which
	// indicates systemic failure rather than a sparse dump (e.g. the
	// locale section prefixes no longer match the dump's markup).
	ErrEmptyDictionary = errors.New("empty dictionary")
)
