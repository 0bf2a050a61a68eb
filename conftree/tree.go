package conftree

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the shape of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindString
	KindNumber
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a single node of a parsed config document.
// Numbers keep their source text so integer and float reads can apply
// their own rules.
type Value struct {
	kind   Kind
	b      bool
	s      string
	object map[string]Value
	array  []Value
}

func Null() Value { return Value{kind: KindNull} }
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func String(s string) Value { return Value{kind: KindString, s: s} }
func Number(text string) Value { return Value{kind: KindNumber, s: text} }
func Object(m map[string]Value) Value { return Value{kind: KindObject, object: m} }
func Array(items ...Value) Value { return Value{kind: KindArray, array: items} }
func Int(i int64) Value { return Number(strconv.FormatInt(i, 10)) }
func Float(f float64) Value { return Number(strconv.FormatFloat(f, 'g', -1, 64)) }

func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is an explicit null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Tree is an object node with typed, key based accessors.
type Tree struct {
	fields map[string]Value
}

// New wraps a map of values as a Tree. A nil map yields an empty tree.
func New(fields map[string]Value) *Tree {
	if fields == nil {
		fields = map[string]Value{}
	}
	return &Tree{fields: fields}
}

// Has reports whether key holds a non-null value.
func (t *Tree) Has(key string) bool {
	v, ok := t.fields[key]
	return ok && !v.IsNull()
}

// Get returns the raw value at key. Null values are reported as missing.
func (t *Tree) Get(key string) (Value, bool) {
	v, ok := t.fields[key]
	if !ok || v.IsNull() {
		return Value{}, false
	}
	return v, true
}

// Keys returns the tree's keys in no particular order.
func (t *Tree) Keys() []string {
	keys := make([]string, 0, len(t.fields))
	for k := range t.fields {
		keys = append(keys, k)
	}
	return keys
}

func (t *Tree) lookup(key string) (Value, error) {
	v, ok := t.Get(key)
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

func wrongType(key string, want string, v Value) error {
	return fmt.Errorf("%w: %q is %s, want %s", ErrWrongType, key, v.kind, want)
}

// GetBool reads a boolean. Strings true/false, yes/no and on/off are
// accepted as HOCON allows.
func (t *Tree) GetBool(key string) (bool, error) {
	v, err := t.lookup(key)
	if err != nil {
		return false, err
	}
	switch v.kind {
	case KindBool:
		return v.b, nil
	case KindString:
		switch strings.ToLower(v.s) {
		case "true", "yes", "on":
			return true, nil
		case "false", "no", "off":
			return false, nil
		}
	}
	return false, wrongType(key, "bool", v)
}

// GetString reads any scalar as its string form.
func (t *Tree) GetString(key string) (string, error) {
	v, err := t.lookup(key)
	if err != nil {
		return "", err
	}
	switch v.kind {
	case KindString, KindNumber:
		return v.s, nil
	case KindBool:
		return strconv.FormatBool(v.b), nil
	}
	return "", wrongType(key, "string", v)
}

// GetInt reads an integral number. Numeric strings are converted; values
// with a fractional part are rejected.
func (t *Tree) GetInt(key string) (int, error) {
	v, err := t.lookup(key)
	if err != nil {
		return 0, err
	}
	if v.kind != KindNumber && v.kind != KindString {
		return 0, wrongType(key, "int", v)
	}
	text := strings.TrimSpace(v.s)
	if i, err := strconv.Atoi(text); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || f > math.MaxInt || f < math.MinInt {
		return 0, wrongType(key, "int", v)
	}
	return int(f), nil
}

// GetFloat reads any number, or a numeric string.
func (t *Tree) GetFloat(key string) (float64, error) {
	v, err := t.lookup(key)
	if err != nil {
		return 0, err
	}
	if v.kind != KindNumber && v.kind != KindString {
		return 0, wrongType(key, "float", v)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
	if err != nil {
		return 0, wrongType(key, "float", v)
	}
	return f, nil
}

// GetTree returns the object at key as a Tree.
func (t *Tree) GetTree(key string) (*Tree, error) {
	v, err := t.lookup(key)
	if err != nil {
		return nil, err
	}
	if v.kind != KindObject {
		return nil, wrongType(key, "object", v)
	}
	return New(v.object), nil
}
