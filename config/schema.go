package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sagarc03/ragenv/conftree"
)

// Kind is the declared type of a schema field.
type Kind int

const (
	KindBool Kind = iota + 1
	KindString
	KindInt
	KindFloat
	KindRecord
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindRecord:
		return "record"
	case KindEnum:
		return "enum"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field declares one field of a record T: its key, its kind, and how a
// resolved value is stored on T. Use the constructors below; a Field built
// by hand resolves to ErrUnsupportedFieldType.
type Field[T any] struct {
	Name string
	Kind Kind

	record func(*conftree.Tree) (any, error)
	enum   func(string) (any, error)
	set    func(*T, any)
}

// Bool declares a boolean field.
func Bool[T any](name string, set func(*T, bool)) Field[T] {
	return Field[T]{Name: name, Kind: KindBool, set: func(t *T, v any) { set(t, v.(bool)) }}
}

// String declares a string field.
func String[T any](name string, set func(*T, string)) Field[T] {
	return Field[T]{Name: name, Kind: KindString, set: func(t *T, v any) { set(t, v.(string)) }}
}

// Int declares an integer field.
func Int[T any](name string, set func(*T, int)) Field[T] {
	return Field[T]{Name: name, Kind: KindInt, set: func(t *T, v any) { set(t, v.(int)) }}
}

// Float declares a floating point field.
func Float[T any](name string, set func(*T, float64)) Field[T] {
	return Field[T]{Name: name, Kind: KindFloat, set: func(t *T, v any) { set(t, v.(float64)) }}
}

// Record declares a nested record field decoded with schema.
func Record[T, R any](name string, schema *Schema[R], set func(*T, R)) Field[T] {
	return Field[T]{
		Name:   name,
		Kind:   KindRecord,
		record: func(tree *conftree.Tree) (any, error) { return schema.decode(tree) },
		set:    func(t *T, v any) { set(t, v.(R)) },
	}
}

// EnumField declares a field holding the name of an enum member.
func EnumField[T any, E fmt.Stringer](name string, enum *Enum[E], set func(*T, E)) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindEnum,
		enum: func(s string) (any, error) { return enum.FromName(s) },
		set:  func(t *T, v any) { set(t, v.(E)) },
	}
}

// Schema is the ordered field list of record type T.
type Schema[T any] struct {
	name   string
	fields []Field[T]
}

// NewSchema declares a record. Fields are resolved in the order given.
func NewSchema[T any](name string, fields ...Field[T]) *Schema[T] {
	return &Schema[T]{name: name, fields: fields}
}

// Name returns the record name.
func (s *Schema[T]) Name() string { return s.name }

// FieldNames returns the declared field names in order.
func (s *Schema[T]) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// decode resolves every field of a nested record. The first failing field
// fails the whole record; the error names that field relative to the record.
func (s *Schema[T]) decode(tree *conftree.Tree) (T, error) {
	var out T
	for _, f := range s.fields {
		v, err := resolveField(tree, f)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("%s: %w", f.Name, err)
		}
		f.set(&out, v)
	}
	return out, nil
}

// Enum is a closed set of named members of E. Names come from String().
type Enum[E fmt.Stringer] struct {
	name   string
	byName map[string]E
}

// NewEnum declares an enumeration called name.
func NewEnum[E fmt.Stringer](name string, members ...E) *Enum[E] {
	byName := make(map[string]E, len(members))
	for _, m := range members {
		byName[m.String()] = m
	}
	return &Enum[E]{name: name, byName: byName}
}

// FromName returns the member whose name is exactly s.
func (e *Enum[E]) FromName(s string) (E, error) {
	if m, ok := e.byName[s]; ok {
		return m, nil
	}
	var zero E
	return zero, fmt.Errorf("%w: %q is not a valid %s (valid: %s)", ErrUnknownEnumValue, s, e.name, strings.Join(e.Names(), ", "))
}

// Names returns the member names sorted.
func (e *Enum[E]) Names() []string {
	names := make([]string, 0, len(e.byName))
	for n := range e.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
