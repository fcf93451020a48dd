package protocol

import (
	"bytes"
	"encoding/json"
	"slices"
	"time"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindBool
	KindFloat
	KindDate
	KindDateTime
	KindBytes
	KindList
	KindMap
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindString:   "string",
	KindBool:     "bool",
	KindFloat:    "float",
	KindDate:     "date",
	KindDateTime: "datetime",
	KindBytes:    "bytes",
	KindList:     "list",
	KindMap:      "map",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// Value is one normalized node: a scalar, a list, or an ordered map.
type Value struct {
	kind  Kind
	str   string
	b     bool
	f     float64
	t     time.Time
	bytes []byte
	list  []Value
	m     *Map
}

// String creates a string scalar.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Bool creates a boolean scalar.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Float creates a float scalar.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Date creates a calendar date scalar; the clock part of t is dropped.
func Date(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: KindDate, t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DateTime creates a date-time scalar.
func DateTime(t time.Time) Value {
	return Value{kind: KindDateTime, t: t}
}

// Bytes creates a binary scalar.
func Bytes(b []byte) Value {
	buf := make([]byte, len(b))
	copy(buf, b)
	return Value{kind: KindBytes, bytes: buf}
}

// List creates a list value.
func List(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// MapOf wraps m as a value.
func MapOf(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMap, m: m}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsZero() bool {
	return v.kind == KindInvalid
}

// String returns the value as string.
func (v Value) String() (string, error) {
	if v.kind != KindString {
		return "", ErrKindMismatch
	}
	return v.str, nil
}

// Bool returns the value as bool.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, ErrKindMismatch
	}
	return v.b, nil
}

// Float returns the value as float64.
func (v Value) Float() (float64, error) {
	if v.kind != KindFloat {
		return 0, ErrKindMismatch
	}
	return v.f, nil
}

// Time returns a Date or DateTime value.
func (v Value) Time() (time.Time, error) {
	if v.kind != KindDate && v.kind != KindDateTime {
		return time.Time{}, ErrKindMismatch
	}
	return v.t, nil
}

// Bytes returns the value as bytes.
func (v Value) Bytes() ([]byte, error) {
	if v.kind != KindBytes {
		return nil, ErrKindMismatch
	}
	buf := make([]byte, len(v.bytes))
	copy(buf, v.bytes)
	return buf, nil
}

// List returns a copy of the value's items.
func (v Value) List() ([]Value, error) {
	if v.kind != KindList {
		return nil, ErrKindMismatch
	}
	return slices.Clone(v.list), nil
}

// Map returns the value as an ordered map.
func (v Value) Map() (*Map, error) {
	if v.kind != KindMap {
		return nil, ErrKindMismatch
	}
	return v.m, nil
}

// Items flattens folding: a list yields its elements, any other value
// yields itself, and an invalid value yields nothing.
func (v Value) Items() []Value {
	switch v.kind {
	case KindInvalid:
		return nil
	case KindList:
		return slices.Clone(v.list)
	default:
		return []Value{v}
	}
}

// Get looks up key when v is a map.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	return v.m.Get(key)
}

// Text returns the string form of a string scalar, or "" for anything else.
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// Equal reports deep equality.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInvalid:
		return true
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindFloat:
		return v.f == o.f
	case KindDate, KindDateTime:
		return v.t.Equal(o.t)
	case KindBytes:
		return bytes.Equal(v.bytes, o.bytes)
	case KindList:
		return slices.EqualFunc(v.list, o.list, Value.Equal)
	case KindMap:
		return v.m.Equal(o.m)
	}
	return false
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindBool:
		return json.Marshal(v.b)
	case KindFloat:
		return json.Marshal(v.f)
	case KindDate:
		return json.Marshal(v.t.Format(dateLayout))
	case KindDateTime:
		return json.Marshal(v.t.Format(dateTimeLayout))
	case KindBytes:
		return json.Marshal(v.bytes)
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case KindMap:
		return v.m.MarshalJSON()
	default:
		return []byte("null"), nil
	}
}

// Map is a string-keyed map that keeps first-seen key order.
type Map struct {
	keys []string
	vals map[string]Value
}

func NewMap() *Map {
	return &Map{vals: make(map[string]Value)}
}

// Set stores v under key. Replacing an existing key keeps its position.
func (m *Map) Set(key string, v Value) *Map {
	if m.vals == nil {
		m.vals = make(map[string]Value)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
	return m
}

// Add stores v under key, folding duplicates: the second occurrence turns
// the entry into a two-element list and later ones append to it.
func (m *Map) Add(key string, v Value) {
	if m.vals == nil {
		m.vals = make(map[string]Value)
	}
	cur, ok := m.vals[key]
	if !ok {
		m.Set(key, v)
		return
	}
	if cur.kind == KindList {
		cur.list = append(cur.list, v)
		m.vals[key] = cur
		return
	}
	m.vals[key] = List(cur, v)
}

func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.vals[key]
	return v, ok
}

func (m *Map) Delete(key string) {
	if _, ok := m.vals[key]; !ok {
		return
	}
	delete(m.vals, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
}

// Keys returns keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i, k := range m.keys {
		if o.keys[i] != k {
			return false
		}
		if !m.vals[k].Equal(o.vals[k]) {
			return false
		}
	}
	return true
}

func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := m.vals[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
