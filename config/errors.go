package config

import "errors"

var (
	// ErrDocumentParse is returned by Load when the source is not a valid document.
	ErrDocumentParse = errors.New("parse config document")
	// ErrTypeMismatch is returned when a scalar is absent or has the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrMissingSection is returned when a nested record has no section.
	ErrMissingSection = errors.New("missing section")
	// ErrUnknownEnumValue is returned when a name matches no enum member.
	ErrUnknownEnumValue = errors.New("unknown enum value")
	// ErrUnsupportedFieldType is returned for a field kind the loader cannot resolve.
	ErrUnsupportedFieldType = errors.New("unsupported field type")
)
