// Package canonical produces canonical JSON for content-addressed identity.
//
// This is the ONLY serialization used for proposition identity computation.
// It follows RFC 8785 restricted to the closed value set identity needs:
//   - object keys sorted lexicographically (all keys here are ASCII, where
//     byte order and UTF-16 code unit order coincide)
//   - no HTML escaping (< > & are NOT escaped)
//   - strings NFC normalized
//   - integers only; floats and null do not exist in the value set
package canonical

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Value is a closed canonical JSON value: String, Int, Array, or Object.
type Value interface {
	isValue()
}

// String is a canonical JSON string, NFC normalized at serialization.
type String string

// Int is a canonical JSON integer.
type Int int64

// Array is an ordered sequence of values.
type Array []Value

// Object is a string-keyed map serialized with sorted keys.
type Object map[string]Value

func (String) isValue() {}
func (Int) isValue()    {}
func (Array) isValue()  {}
func (Object) isValue() {}

// Marshal serializes a value to canonical JSON.
func Marshal(v Value) ([]byte, error) {
	switch val := v.(type) {
	case String:
		return marshalString(string(val))
	case Int:
		return []byte(strconv.FormatInt(int64(val), 10)), nil
	case Array:
		return marshalArray(val)
	case Object:
		return marshalObject(val)
	default:
		return nil, fmt.Errorf("unsupported canonical value: %T", v)
	}
}

// marshalString produces a canonical JSON string: NFC normalized, with
// HTML escaping disabled.
func marshalString(s string) ([]byte, error) {
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	// json.Encoder adds a trailing newline.
	result := buf.Bytes()
	if n := len(result); n > 0 && result[n-1] == '\n' {
		result = result[:n-1]
	}
	return result, nil
}

func marshalArray(arr Array) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := Marshal(elem)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func marshalObject(obj Object) ([]byte, error) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := marshalString(k)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := Marshal(obj[k])
		if err != nil {
			return nil, fmt.Errorf("value for key %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
