// File: container.go
// Title: Container Shape Rendering
// Description: Implements the container members of the shape catalog:
//              sequences, key/value maps, and front-only stacks and queues.
//              Elements are rendered through the same dispatcher, so nested
//              containers render to arbitrary depth.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with container catalog

package gl

import (
	"iter"
)

// ===============================
// Sequence shape
// ===============================

// seqValue renders a slice as {e0, e1, ...}
type seqValue[T any] struct {
	xs []T
}

func (v seqValue[T]) appendTo(dst []byte) []byte {
	dst = append(dst, '{')
	for i, x := range v.xs {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = appendAny(dst, x)
	}
	return append(dst, '}')
}

// Slice wraps a slice or array segment as a sequence. Renders as
// {e0, e1, ...}; an empty slice renders as {}. The slice is a borrowed
// view over the caller's data and is never copied or retained.
func Slice[T any](xs []T) Value {
	return seqValue[T]{xs: xs}
}

// iterValue renders an iterator-backed sequence
type iterValue[T any] struct {
	xs iter.Seq[T]
}

func (v iterValue[T]) appendTo(dst []byte) []byte {
	dst = append(dst, '{')
	first := true
	for x := range v.xs {
		if !first {
			dst = append(dst, ", "...)
		}
		first = false
		dst = appendAny(dst, x)
	}
	return append(dst, '}')
}

// Seq wraps any forward-traversable collection as a sequence: linked lists,
// deques, sets, or anything else exposing an iterator. The iterator is
// consumed once per print statement.
func Seq[T any](xs iter.Seq[T]) Value {
	return iterValue[T]{xs: xs}
}

// ===============================
// Map shape
// ===============================

// mapValue renders a Go map as {k: v, ...} in map iteration order
type mapValue[K comparable, V any] struct {
	m map[K]V
}

func (v mapValue[K, V]) appendTo(dst []byte) []byte {
	dst = append(dst, '{')
	first := true
	for k, val := range v.m {
		if !first {
			dst = append(dst, ", "...)
		}
		first = false
		dst = appendAny(dst, k)
		dst = append(dst, ": "...)
		dst = appendAny(dst, val)
	}
	return append(dst, '}')
}

// Map wraps a map as an unordered key/value association. Renders as
// {k: v, ...} in iteration order; an empty map renders as {}.
func Map[K comparable, V any](m map[K]V) Value {
	return mapValue[K, V]{m: m}
}

// seq2Value renders an iterator of key/value pairs
type seq2Value[K, V any] struct {
	xs iter.Seq2[K, V]
}

func (v seq2Value[K, V]) appendTo(dst []byte) []byte {
	dst = append(dst, '{')
	first := true
	for k, val := range v.xs {
		if !first {
			dst = append(dst, ", "...)
		}
		first = false
		dst = appendAny(dst, k)
		dst = append(dst, ": "...)
		dst = appendAny(dst, val)
	}
	return append(dst, '}')
}

// Map2 wraps a key/value iterator as a map shape. Use for ordered or
// duplicate-key associations, which Go maps cannot express.
func Map2[K, V any](xs iter.Seq2[K, V]) Value {
	return seq2Value[K, V]{xs: xs}
}

// Entry is one key/value pair of an ordered association
type Entry[K, V any] struct {
	Key K
	Val V
}

// E builds an Entry
func E[K, V any](k K, v V) Entry[K, V] {
	return Entry[K, V]{Key: k, Val: v}
}

// entriesValue renders an ordered association as {k: v, ...}
type entriesValue[K, V any] struct {
	es []Entry[K, V]
}

func (v entriesValue[K, V]) appendTo(dst []byte) []byte {
	dst = append(dst, '{')
	for i, e := range v.es {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = appendAny(dst, e.Key)
		dst = append(dst, ": "...)
		dst = appendAny(dst, e.Val)
	}
	return append(dst, '}')
}

// Entries wraps an ordered list of key/value pairs as a map shape
func Entries[K, V any](es []Entry[K, V]) Value {
	return entriesValue[K, V]{es: es}
}

// ===============================
// Front-only shapes
// ===============================

// LIFO is the view a stack-like container must expose: only the top
// element is observable without mutating the structure.
type LIFO[T any] interface {
	Len() int
	Top() T
}

// FIFO is the view a queue-like container must expose: only the front and
// back elements are observable without mutating the structure.
type FIFO[T any] interface {
	Len() int
	Front() T
	Back() T
}

// stackValue renders a LIFO structure with elision of hidden elements
type stackValue[T any] struct {
	s LIFO[T]
}

func (v stackValue[T]) appendTo(dst []byte) []byte {
	dst = append(dst, '{')
	if n := v.s.Len(); n == 1 {
		dst = appendAny(dst, v.s.Top())
	} else if n != 0 {
		dst = appendAny(dst, v.s.Top())
		dst = append(dst, ", ..."...)
	}
	return append(dst, '}')
}

// Stack wraps a stack-like container. Renders as {} when empty, {top} with
// one element, and {top, ...} otherwise; deeper elements are inaccessible
// and never rendered.
func Stack[T any](s LIFO[T]) Value {
	return stackValue[T]{s: s}
}

// queueValue renders a FIFO structure with elision of hidden elements
type queueValue[T any] struct {
	q FIFO[T]
}

func (v queueValue[T]) appendTo(dst []byte) []byte {
	dst = append(dst, '{')
	switch n := v.q.Len(); n {
	case 0:
	case 1:
		dst = appendAny(dst, v.q.Front())
	case 2:
		dst = appendAny(dst, v.q.Front())
		dst = append(dst, ", "...)
		dst = appendAny(dst, v.q.Back())
	default:
		dst = appendAny(dst, v.q.Front())
		dst = append(dst, ", ..., "...)
		dst = appendAny(dst, v.q.Back())
	}
	return append(dst, '}')
}

// Queue wraps a queue-like container. Renders as {} when empty, {front}
// with one element, {front, back} with two, and {front, ..., back}
// otherwise.
func Queue[T any](q FIFO[T]) Value {
	return queueValue[T]{q: q}
}
