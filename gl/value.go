// File: value.go
// Title: Value Rendering and Scalar Shapes
// Description: Defines the Value interface every shape renderer implements
//              and the scalar members of the shape catalog: booleans,
//              characters, text, and the generic fallback. Container shapes
//              live in container.go.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with scalar catalog

package gl

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Value is the rendered form of a variable. Constructors such as Char,
// Slice, Map, Stack and Queue select the rendering rule at the call site;
// values not wrapped in a constructor fall back to their generic textual
// conversion.
//
// Rendering never fails and never panics for catalog shapes.
type Value interface {
	appendTo(dst []byte) []byte
}

// appendAny renders a single value: wrapped values use their shape rule,
// the special-cased scalars use theirs, anything else delegates to its
// generic textual conversion. Container shapes reuse this for elements,
// keys and values, so nesting works to arbitrary depth.
func appendAny(dst []byte, v any) []byte {
	switch t := v.(type) {
	case Value:
		return t.appendTo(dst)
	case bool:
		return strconv.AppendBool(dst, t)
	case string:
		dst = append(dst, '"')
		dst = append(dst, t...)
		return append(dst, '"')
	case []byte:
		dst = append(dst, '"')
		dst = append(dst, t...)
		return append(dst, '"')
	default:
		return fmt.Appendf(dst, "%v", v)
	}
}

// boolValue renders as the literal true or false
type boolValue bool

func (v boolValue) appendTo(dst []byte) []byte {
	return strconv.AppendBool(dst, bool(v))
}

// Bool wraps a boolean. Renders as true or false, never 1 or 0.
func Bool(v bool) Value {
	return boolValue(v)
}

// charValue renders as the raw character in single quotes
type charValue rune

func (v charValue) appendTo(dst []byte) []byte {
	dst = append(dst, '\'')
	dst = utf8.AppendRune(dst, rune(v))
	return append(dst, '\'')
}

// Char wraps a character. Renders as 'c' with no escaping. Characters must
// be wrapped explicitly: a bare rune is indistinguishable from an int32 and
// would render as a number.
func Char(c rune) Value {
	return charValue(c)
}

// Byte wraps a single byte as a character
func Byte(c byte) Value {
	return charValue(rune(c))
}

// strValue renders as the raw contents in double quotes
type strValue string

func (v strValue) appendTo(dst []byte) []byte {
	dst = append(dst, '"')
	dst = append(dst, v...)
	return append(dst, '"')
}

// Str wraps a string. Renders as "s" with no escaping of embedded quotes.
func Str(s string) Value {
	return strValue(s)
}

// Bytes wraps a text buffer. Renders like Str.
func Bytes(b []byte) Value {
	return strValue(b)
}

// genValue is the generic fallback shape
type genValue[T any] struct {
	v T
}

func (g genValue[T]) appendTo(dst []byte) []byte {
	return fmt.Appendf(dst, "%v", g.v)
}

// Val wraps any value, delegating to its own textual conversion (including
// fmt.Stringer implementations), unmodified. This is the fallback for
// user-defined types outside the shape catalog.
func Val[T any](v T) Value {
	return genValue[T]{v: v}
}
