package types

import "errors"

// Collection and topic errors.
var (
	ErrNotFound       = errors.New("review topic not found")
	ErrInvalidName    = errors.New("invalid topic name")
	ErrDuplicateName  = errors.New("topic name already exists")
	ErrInvalidGapTier = errors.New("invalid review gap")
)

// Storage errors.
var (
	// ErrCorruptStorage wraps any failure to decode previously saved state.
	// There is no safe default to fall back to, so callers treat it as fatal.
	ErrCorruptStorage = errors.New("stored review topics are corrupt")
)
