package sexp

import (
	"fmt"
	"strconv"
	"strings"
)

// FindNode returns the first child of s that is either the bare symbol
// key or a list starting with it.
// Example: FindNode(root, "version") finds (version 20211014).
func FindNode(s Sexp, key string) (Sexp, bool) {
	l, ok := s.(*List)
	if !ok {
		return nil, false
	}
	for _, item := range l.elements {
		if item == nil {
			continue
		}
		if sym, ok := item.(Symbol); ok {
			if string(sym) == key {
				return item, true
			}
			continue
		}
		if name, err := GetNodeName(item); err == nil && name == key {
			return item, true
		}
	}
	return nil, false
}

// FindAllNodes returns every direct child list of s whose head symbol
// is key. Nested occurrences are not searched.
func FindAllNodes(s Sexp, key string) []Sexp {
	l, ok := s.(*List)
	if !ok {
		return nil
	}
	var results []Sexp
	for _, item := range l.elements {
		if item == nil || item.IsLeaf() {
			continue
		}
		if name, err := GetNodeName(item); err == nil && name == key {
			results = append(results, item)
		}
	}
	return results
}

// SexpToSlice returns the elements of a list as a Go slice. Atoms and
// nil yield an empty slice.
func SexpToSlice(s Sexp) []Sexp {
	l, ok := s.(*List)
	if !ok {
		return nil
	}
	return append([]Sexp(nil), l.elements...)
}

// GetNodeName returns the head symbol of a list, or the symbol itself
// for atoms.
func GetNodeName(s Sexp) (string, error) {
	if sym, ok := s.(Symbol); ok {
		return string(sym), nil
	}
	head := s.Head()
	if sym, ok := head.(Symbol); ok {
		return string(sym), nil
	}
	return "", fmt.Errorf("expected symbol at head of list")
}

// GetString extracts the atom at the given index in a list. Index 0 is
// the node name, 1 the first value.
func GetString(s Sexp, index int) (string, error) {
	l, ok := s.(*List)
	if !ok {
		return "", fmt.Errorf("expected list, got leaf")
	}
	if index < 0 || index >= len(l.elements) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(l.elements))
	}
	if sym, ok := l.elements[index].(Symbol); ok {
		return string(sym), nil
	}
	return "", fmt.Errorf("expected symbol at index %d, got %T", index, l.elements[index])
}

// GetQuotedString extracts a string field at the given index. The
// lexer already strips quotes, so this mostly matches GetString, but
// it also tolerates input parsed elsewhere that kept its quotes.
func GetQuotedString(s Sexp, index int) (string, error) {
	str, err := GetString(s, index)
	if err != nil {
		return "", err
	}
	if len(str) >= 2 && strings.HasPrefix(str, `"`) && strings.HasSuffix(str, `"`) {
		return str[1 : len(str)-1], nil
	}
	return str, nil
}

// GetInt extracts an integer value at the given index.
func GetInt(s Sexp, index int) (int, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}
	return val, nil
}

// GetFloat extracts a float64 value at the given index.
func GetFloat(s Sexp, index int) (float64, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}
	return val, nil
}

// HasSymbol reports whether a list contains the bare symbol.
// Example: HasSymbol(pinNode, "hide").
func HasSymbol(s Sexp, symbol string) bool {
	l, ok := s.(*List)
	if !ok {
		return false
	}
	for _, item := range l.elements {
		if sym, ok := item.(Symbol); ok && string(sym) == symbol {
			return true
		}
	}
	return false
}
