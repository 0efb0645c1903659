package tree

import "fmt"

// Kind discriminates the variants of a Value.
type Kind int

const (
	// KindNull is the absence of a value.
	KindNull Kind = iota
	// KindBool is a boolean scalar.
	KindBool
	// KindInt is an integer scalar.
	KindInt
	// KindFloat is a floating-point scalar.
	KindFloat
	// KindString is a text scalar.
	KindString
	// KindSequence is an ordered list of values.
	KindSequence
	// KindMapping is an ordered list of key/value entries with unique keys.
	KindMapping
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entry is one key/value pair of a mapping. Line is the 1-based line of the
// key in the source text.
type Entry struct {
	Key   string
	Line  int
	Value *Value
}

// Value is one node of the deserialized tree. The document that produced a
// tree exclusively owns it; callers must treat values as read-only.
type Value struct {
	kind    Kind
	line    int
	boolV   bool
	intV    int64
	floatV  float64
	strV    string
	seq     []*Value
	entries []Entry
}

// Kind returns the variant of the value.
func (v *Value) Kind() Kind {
	return v.kind
}

// Line returns the 1-based source line of the value, or zero when unknown.
func (v *Value) Line() int {
	return v.line
}

// IsNull reports whether the value is the null variant.
func (v *Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean scalar. It is false for any other kind.
func (v *Value) Bool() bool {
	return v.boolV
}

// Int returns the integer scalar. It is zero for any other kind.
func (v *Value) Int() int64 {
	return v.intV
}

// Float returns the floating-point scalar. It is zero for any other kind.
func (v *Value) Float() float64 {
	return v.floatV
}

// Text returns the string scalar. It is empty for any other kind.
func (v *Value) Text() string {
	return v.strV
}

// Len returns the number of elements of a sequence or entries of a mapping,
// and zero for scalars.
func (v *Value) Len() int {
	if v.kind == KindSequence {
		return len(v.seq)
	}

	return len(v.entries)
}

// Index returns the i-th element of a sequence, or nil when the value is not
// a sequence or i is out of range.
func (v *Value) Index(i int) *Value {
	if v.kind != KindSequence || i < 0 || i >= len(v.seq) {
		return nil
	}

	return v.seq[i]
}

// Entries returns the mapping entries in document order. It is nil for any
// other kind.
func (v *Value) Entries() []Entry {
	if v.kind != KindMapping {
		return nil
	}

	return v.entries
}

// Get returns the value of the mapping entry with the given key.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != KindMapping {
		return nil, false
	}

	for _, entry := range v.entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}

	return nil, false
}

// Lookup walks nested mappings along the given key path. An empty path
// returns the value itself.
func (v *Value) Lookup(path ...string) (*Value, bool) {
	current := v

	for _, key := range path {
		next, ok := current.Get(key)
		if !ok {
			return nil, false
		}

		current = next
	}

	return current, true
}

// clone returns a deep copy of the value. Used when expanding aliases so the
// resulting tree never shares nodes.
func (v *Value) clone() *Value {
	copied := &Value{
		kind:   v.kind,
		line:   v.line,
		boolV:  v.boolV,
		intV:   v.intV,
		floatV: v.floatV,
		strV:   v.strV,
	}

	if v.seq != nil {
		copied.seq = make([]*Value, len(v.seq))
		for i, elem := range v.seq {
			copied.seq[i] = elem.clone()
		}
	}

	if v.entries != nil {
		copied.entries = make([]Entry, len(v.entries))
		for i, entry := range v.entries {
			copied.entries[i] = Entry{Key: entry.Key, Line: entry.Line, Value: entry.Value.clone()}
		}
	}

	return copied
}
