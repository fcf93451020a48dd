package protocol

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Formats holds the locale layouts used to render payload dates and times.
type Formats struct {
	Date string
	Time string
}

// DefaultFormats matches the en_US locale.
var DefaultFormats = Formats{Date: ShortDateLayout, Time: "03:04 PM"}

// TimeOfDay marks a time.Time that is sent as a clock time rather than a date.
type TimeOfDay time.Time

// Marshal converts a Go payload value into a Value ready for the wire.
// Dates and times render with f; booleans become Y/N. Plain Go maps are
// emitted in sorted key order, use *Map to control ordering.
func Marshal(v any, f Formats) (Value, error) {
	switch x := v.(type) {
	case nil:
		return String(""), nil
	case Value:
		return x, nil
	case *Map:
		return MapOf(x), nil
	case string:
		return String(x), nil
	case bool:
		if x {
			return String("Y"), nil
		}
		return String("N"), nil
	case time.Time:
		return String(x.Format(f.Date)), nil
	case TimeOfDay:
		return String(time.Time(x).Format(f.Time)), nil
	case int:
		return String(strconv.Itoa(x)), nil
	case int64:
		return String(strconv.FormatInt(x, 10)), nil
	case uint:
		return String(strconv.FormatUint(uint64(x), 10)), nil
	case float64:
		return String(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case []byte:
		return Bytes(x), nil
	case []string:
		items := make([]Value, 0, len(x))
		for _, s := range x {
			items = append(items, String(s))
		}
		return List(items...), nil
	case []any:
		return marshalList(x, f)
	case []map[string]any:
		items := make([]any, 0, len(x))
		for _, m := range x {
			items = append(items, m)
		}
		return marshalList(items, f)
	case map[string]any:
		m, err := MarshalMap(x, f)
		if err != nil {
			return Value{}, err
		}
		return MapOf(m), nil
	default:
		return marshalReflect(reflect.ValueOf(v), f)
	}
}

// marshalReflect covers named and sized types the switch in Marshal does not
// name, such as a named map type nested in a payload or an int32.
func marshalReflect(rv reflect.Value, f Formats) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return String(""), nil
		}
		return Marshal(rv.Elem().Interface(), f)
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Marshal(rv.Bool(), f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return String(strconv.FormatInt(rv.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return String(strconv.FormatUint(rv.Uint(), 10)), nil
	case reflect.Float32:
		return String(strconv.FormatFloat(rv.Float(), 'f', -1, 32)), nil
	case reflect.Float64:
		return String(strconv.FormatFloat(rv.Float(), 'f', -1, 64)), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return Bytes(rv.Bytes()), nil
		}
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return marshalList(items, f)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		m := NewMap()
		for _, k := range keys {
			v, err := Marshal(rv.MapIndex(k).Interface(), f)
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", k.String(), err)
			}
			m.Set(k.String(), v)
		}
		return MapOf(m), nil
	}
	if !rv.IsValid() {
		return String(""), nil
	}
	return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedValue, rv.Type())
}

// MarshalMap converts a Go map into an ordered Map with sorted keys.
func MarshalMap(in map[string]any, f Formats) (*Map, error) {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	m := NewMap()
	for _, k := range keys {
		v, err := Marshal(in[k], f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		m.Set(k, v)
	}
	return m, nil
}

func marshalList(in []any, f Formats) (Value, error) {
	items := make([]Value, 0, len(in))
	for i, item := range in {
		v, err := Marshal(item, f)
		if err != nil {
			return Value{}, fmt.Errorf("[%d]: %w", i, err)
		}
		items = append(items, v)
	}
	return List(items...), nil
}

// EncodeXML writes m's entries as child elements. A list entry becomes one
// repeated element per item, the inverse of folding.
func (m *Map) EncodeXML(enc *xml.Encoder) error {
	for _, k := range m.Keys() {
		if err := EncodeElement(enc, k, m.vals[k]); err != nil {
			return err
		}
	}
	return nil
}

// EncodeElement writes v as one or more <name> elements.
func EncodeElement(enc *xml.Encoder, name string, v Value) error {
	if v.kind == KindList {
		for _, item := range v.list {
			if err := EncodeElement(enc, name, item); err != nil {
				return err
			}
		}
		return nil
	}
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if v.kind == KindMap {
		if err := v.m.EncodeXML(enc); err != nil {
			return err
		}
	} else if text := wireText(v); text != "" {
		if err := enc.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func wireText(v Value) string {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		if v.b {
			return "Y"
		}
		return "N"
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindDate:
		return v.t.Format(ShortDateLayout)
	case KindDateTime:
		return v.t.Format(TimeStampLayout)
	case KindBytes:
		return base64.StdEncoding.EncodeToString(v.bytes)
	default:
		return ""
	}
}
