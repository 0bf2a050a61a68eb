package conftree

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/gurkankaymak/hocon"
)

// ParseFile reads and parses a HOCON document from path.
func ParseFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the caller's config flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	tree, err := ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// ParseString parses a HOCON document held in memory.
func ParseString(input string) (*Tree, error) {
	doc, err := hocon.ParseString(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return fromDocument(doc)
}

func fromDocument(doc *hocon.Config) (*Tree, error) {
	root, err := convert(doc.GetRoot())
	if err != nil {
		return nil, err
	}
	switch root.kind {
	case KindObject:
		return New(root.object), nil
	case KindNull:
		return New(nil), nil
	default:
		return nil, fmt.Errorf("%w: root is %s, want object", ErrSyntax, root.kind)
	}
}

func convert(v hocon.Value) (Value, error) {
	if v == nil {
		return Null(), nil
	}
	switch v.Type() {
	case hocon.ObjectType:
		obj, ok := v.(hocon.Object)
		if !ok {
			return Value{}, fmt.Errorf("%w: unexpected object value %T", ErrSyntax, v)
		}
		fields := make(map[string]Value, len(obj))
		for k, child := range obj {
			c, err := convert(child)
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", k, err)
			}
			fields[k] = c
		}
		return Object(fields), nil
	case hocon.ArrayType:
		arr, ok := v.(hocon.Array)
		if !ok {
			return Value{}, fmt.Errorf("%w: unexpected array value %T", ErrSyntax, v)
		}
		items := make([]Value, 0, len(arr))
		for i, item := range arr {
			c, err := convert(item)
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items = append(items, c)
		}
		return Array(items...), nil
	case hocon.NumberType:
		return Number(scalarText(v)), nil
	case hocon.BooleanType:
		return Bool(v.String() == "true"), nil
	case hocon.NullType:
		return Null(), nil
	case hocon.StringType:
		return String(scalarText(v)), nil
	case hocon.ConcatenationType:
		s, err := joinConcatenation(v)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	default:
		return Value{}, fmt.Errorf("%w: unsupported value %s", ErrSyntax, v.String())
	}
}

// joinConcatenation flattens a value concatenation such as
// `state.json`, `nomic embed` or `"http://"${host}":11434"` into the
// string HOCON defines for it. The library keeps the pieces in an
// unexported slice type, so they are read through reflection.
func joinConcatenation(v hocon.Value) (string, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return "", fmt.Errorf("%w: unexpected concatenation %T", ErrSyntax, v)
	}
	var b strings.Builder
	for i := range rv.Len() {
		item := rv.Index(i)
		if item.IsNil() {
			// unresolved optional substitution
			continue
		}
		piece, ok := item.Interface().(hocon.Value)
		if !ok {
			return "", fmt.Errorf("%w: unexpected concatenation piece %s", ErrSyntax, item.Type())
		}
		switch piece.Type() {
		case hocon.StringType, hocon.NumberType, hocon.BooleanType:
			b.WriteString(scalarText(piece))
		case hocon.NullType, hocon.SubstitutionType:
		case hocon.ConcatenationType:
			s, err := joinConcatenation(piece)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		default:
			return "", fmt.Errorf("%w: cannot concatenate %s into a string", ErrSyntax, piece.String())
		}
	}
	return b.String(), nil
}

// scalarText returns the source form of a scalar. hocon.String.String
// re-quotes punctuation, so strings are read raw.
func scalarText(v hocon.Value) string {
	switch s := v.(type) {
	case hocon.String:
		return string(s)
	case hocon.Float64:
		return strconv.FormatFloat(float64(s), 'g', -1, 64)
	case hocon.Float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 32)
	default:
		return v.String()
	}
}
