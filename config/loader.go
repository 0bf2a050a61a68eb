package config

import (
	"fmt"
	"log/slog"

	"github.com/sagarc03/ragenv/conftree"
)

type options struct {
	logger *slog.Logger
}

// Option configures Load and Decode.
type Option func(*options)

// WithLogger sets the logger that receives field failures.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load parses the HOCON document at path and decodes it with schema.
// The only error returned is a document-level parse failure, wrapped in
// ErrDocumentParse. Field failures are logged and leave the field unset.
func Load[T any](path string, schema *Schema[T], opts ...Option) (*T, error) {
	tree, err := conftree.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentParse, err)
	}
	return Decode(tree, schema, opts...), nil
}

// Decode fills a new T from tree, one top-level field at a time.
//
// A field missing from the tree (or null) is left unset without a log
// line. A field that fails to resolve is logged with its name and cause
// and left unset; the remaining fields are still decoded. Nested records
// do not get this treatment: any failure inside one fails the record as a
// whole, and the enclosing top-level field is left unset.
//
// Only presence is tracked per field, so a top-level T should use pointer
// fields. A value field that was absent reads as its zero value.
func Decode[T any](tree *conftree.Tree, schema *Schema[T], opts ...Option) *T {
	o := newOptions(opts)

	var out T
	for _, f := range schema.fields {
		if !tree.Has(f.Name) {
			continue
		}
		v, err := resolveField(tree, f)
		if err != nil {
			o.logger.Warn("failed to parse config field",
				slog.String("schema", schema.name),
				slog.String("field", f.Name),
				slog.Any("err", err))
			continue
		}
		f.set(&out, v)
	}
	return &out
}

func resolveField[T any](tree *conftree.Tree, f Field[T]) (any, error) {
	if f.set == nil {
		return nil, fmt.Errorf("%w: field %q has no setter", ErrUnsupportedFieldType, f.Name)
	}
	switch f.Kind {
	case KindBool:
		v, err := tree.GetBool(f.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
		}
		return v, nil
	case KindString:
		v, err := tree.GetString(f.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
		}
		return v, nil
	case KindInt:
		v, err := tree.GetInt(f.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
		}
		return v, nil
	case KindFloat:
		v, err := tree.GetFloat(f.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
		}
		return v, nil
	case KindRecord:
		if f.record == nil {
			break
		}
		sub, err := tree.GetTree(f.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMissingSection, err)
		}
		v, err := f.record(sub)
		if err != nil {
			return nil, fmt.Errorf("%s.%w", f.Name, err)
		}
		return v, nil
	case KindEnum:
		if f.enum == nil {
			break
		}
		name, err := tree.GetString(f.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
		}
		return f.enum(name)
	}
	return nil, fmt.Errorf("%w: field %q declared as %s", ErrUnsupportedFieldType, f.Name, f.Kind)
}
