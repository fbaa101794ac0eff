package state

// A Kind identifies which variant of a Value is populated.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

// A Value is one attribute value from a Terraform state document. Values are
// dynamically typed: a value is null, a boolean, a number, a string, a list
// of values, or an object mapping keys to values, arbitrarily nested.
//
// Numbers keep the exact decimal text they had in the source document, so
// rendering a number never adds precision or rounding.
type Value struct {
	Kind Kind

	// Populated based on Kind. Exactly one of these fields is meaningful.
	Bool   bool
	Number string
	Str    string
	List   []Value
	Object Object
}

// An Object is an ordered sequence of key/value fields. Terraform's state
// stores attributes as JSON objects; we keep the fields in document order
// instead of using a Go map so that generated configuration preserves the
// attribute order of the source.
type Object []Field

// A Field is a single entry of an Object.
type Field struct {
	Key   string
	Value Value
}

// Get returns the value of the field with the given key, and whether such a
// field exists. When the object has duplicate keys, the first one wins.
func (o Object) Get(key string) (Value, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// GetString returns the string value of the field with the given key, or ""
// if the field is absent or not a string.
func (o Object) GetString(key string) string {
	v, ok := o.Get(key)
	if !ok || v.Kind != KindString {
		return ""
	}
	return v.Str
}

// NullVal returns the null value.
func NullVal() Value { return Value{Kind: KindNull} }

// BoolVal returns a boolean value.
func BoolVal(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NumberVal returns a number value with the given decimal text.
func NumberVal(text string) Value { return Value{Kind: KindNumber, Number: text} }

// StringVal returns a string value.
func StringVal(s string) Value { return Value{Kind: KindString, Str: s} }

// ListVal returns a list value with the given elements.
func ListVal(elems []Value) Value { return Value{Kind: KindList, List: elems} }

// ObjectVal returns an object value with the given fields, in order.
func ObjectVal(fields []Field) Value { return Value{Kind: KindObject, Object: fields} }
