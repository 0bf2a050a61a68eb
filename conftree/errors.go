package conftree

import "errors"

var (
	// ErrKeyNotFound is returned when a key is absent or null.
	ErrKeyNotFound = errors.New("key not found")
	// ErrWrongType is returned when a value cannot be read as the requested type.
	ErrWrongType = errors.New("wrong type")
	// ErrSyntax is returned when a document cannot be parsed.
	ErrSyntax = errors.New("invalid config document")
)
