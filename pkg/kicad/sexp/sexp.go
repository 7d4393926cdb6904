// Package sexp provides a streaming S-expression parser for KiCad
// files, plus navigation helpers for walking the parsed tree. The
// parser handles arbitrarily large inputs by reading tokens off an
// io.Reader instead of slurping the whole file.
package sexp

import (
	"io"
	"strings"
)

// Sexp represents an S-expression node, either an atom or a list.
type Sexp interface {
	// IsLeaf returns true if this is an atom (not a list)
	IsLeaf() bool

	// LeafCount returns the number of elements in a list (1 for atoms)
	LeafCount() int

	// Head returns the first element of a list (the atom itself for atoms)
	Head() Sexp

	// Tail returns the rest of the list after the first element (nil for atoms)
	Tail() Sexp

	// String returns the string representation
	String() string
}

// Symbol is an atom. Quoted strings from the input appear as Symbols
// with the quotes already stripped and escapes resolved.
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) LeafCount() int { return 1 }
func (s Symbol) Head() Sexp     { return s }
func (s Symbol) Tail() Sexp     { return nil }
func (s Symbol) String() string { return string(s) }

// List is a sequence of S-expressions.
type List struct {
	elements []Sexp
}

func (l *List) IsLeaf() bool   { return false }
func (l *List) LeafCount() int { return len(l.elements) }

func (l *List) Head() Sexp {
	if len(l.elements) == 0 {
		return nil
	}
	return l.elements[0]
}

func (l *List) Tail() Sexp {
	if len(l.elements) <= 1 {
		return nil
	}
	return &List{elements: l.elements[1:]}
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, elem := range l.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(elem.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Get returns the element at the given index, or nil out of range.
func (l *List) Get(index int) Sexp {
	if index < 0 || index >= len(l.elements) {
		return nil
	}
	return l.elements[index]
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.elements)
}

// Parse parses all top-level S-expressions from a reader.
func Parse(r io.Reader) ([]Sexp, error) {
	return NewParser(r).ParseAll()
}

// ParseString parses all top-level S-expressions from a string.
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}
