package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a JSON value of any shape. Numbers keep their literal text so a
// decoded Value marshals back to the same JSON.
type Value struct {
	kind Kind
	b    bool
	n    json.Number
	s    string
	arr  []Value
	obj  Object
}

// Object is an open record: whatever keys the remote chose to send.
type Object map[string]Value

// NullValue, BoolValue, NumberValue, StringValue, ArrayValue and ObjectValue
// construct a Value of the matching kind.
func NullValue() Value                { return Value{} }
func BoolValue(b bool) Value          { return Value{kind: KindBool, b: b} }
func NumberValue(n json.Number) Value { return Value{kind: KindNumber, n: n} }
func StringValue(s string) Value      { return Value{kind: KindString, s: s} }
func ArrayValue(vs ...Value) Value    { return Value{kind: KindArray, arr: vs} }
func ObjectValue(o Object) Value      { return Value{kind: KindObject, obj: o} }

// FromAny converts a decoded Go value (as produced by encoding/json into an
// interface{}) into a Value.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return NullValue()
	case Value:
		return t
	case bool:
		return BoolValue(t)
	case json.Number:
		return NumberValue(t)
	case float64:
		return NumberValue(json.Number(strconv.FormatFloat(t, 'g', -1, 64)))
	case int:
		return NumberValue(json.Number(strconv.Itoa(t)))
	case int64:
		return NumberValue(json.Number(strconv.FormatInt(t, 10)))
	case string:
		return StringValue(t)
	case []any:
		arr := make([]Value, len(t))
		for i, e := range t {
			arr[i] = FromAny(e)
		}
		return ArrayValue(arr...)
	case map[string]any:
		obj := make(Object, len(t))
		for k, e := range t {
			obj[k] = FromAny(e)
		}
		return ObjectValue(obj)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return NullValue()
		}
		var v Value
		if err := v.UnmarshalJSON(raw); err != nil {
			return NullValue()
		}
		return v
	}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null (or the zero Value).
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) AsBool() (bool, bool)          { return v.b, v.kind == KindBool }
func (v Value) AsNumber() (json.Number, bool) { return v.n, v.kind == KindNumber }
func (v Value) AsString() (string, bool)      { return v.s, v.kind == KindString }
func (v Value) AsArray() ([]Value, bool)      { return v.arr, v.kind == KindArray }
func (v Value) AsObject() (Object, bool)      { return v.obj, v.kind == KindObject }

// Interface converts v back into plain Go values: nil, bool, json.Number,
// string, []any or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		return v.obj.Interface()
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	case KindNumber:
		if v.n == "" {
			return []byte("0"), nil
		}
		return []byte(v.n), nil
	case KindString:
		return json.Marshal(v.s)
	case KindArray:
		if v.arr == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.arr)
	case KindObject:
		if v.obj == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(map[string]Value(v.obj))
	default:
		return nil, fmt.Errorf("value: unknown kind %d", int(v.kind))
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*v = FromAny(raw)
	return nil
}

// Get returns the value stored under key.
func (o Object) Get(key string) (Value, bool) {
	v, ok := o[key]
	return v, ok
}

// String returns the string stored under key, or "" when absent or not a string.
func (o Object) String(key string) string {
	s, _ := o[key].AsString()
	return s
}

// Interface converts o into a map[string]any.
func (o Object) Interface() map[string]any {
	out := make(map[string]any, len(o))
	for k, v := range o {
		out[k] = v.Interface()
	}
	return out
}
