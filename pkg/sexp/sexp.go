// Package sexp is a small streaming S-expression reader used for event
// scripts. Atoms are kept as text; callers convert them as needed.
package sexp

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Sexp is either an *Atom or a *List.
type Sexp interface {
	IsLeaf() bool
	// Line is the 1-based source line the node starts on.
	Line() int
	String() string
}

// Atom is a bare symbol, number or quoted string.
type Atom struct {
	Value  string
	Quoted bool
	line   int
}

func (a *Atom) IsLeaf() bool { return true }
func (a *Atom) Line() int    { return a.line }

func (a *Atom) String() string {
	if a.Quoted {
		return strconv.Quote(a.Value)
	}
	return a.Value
}

// Float parses the atom as a finite number.
func (a *Atom) Float() (float64, error) {
	if a.Quoted {
		return 0, fmt.Errorf("line %d: expected number, got string %s", a.line, a)
	}
	v, err := strconv.ParseFloat(a.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: expected number, got %q", a.line, a.Value)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("line %d: expected finite number, got %q", a.line, a.Value)
	}
	return v, nil
}

// List is a parenthesised sequence of nodes.
type List struct {
	Items []Sexp
	line  int
}

func (l *List) IsLeaf() bool { return false }
func (l *List) Line() int    { return l.line }

// Len returns the number of elements in the list
func (l *List) Len() int {
	return len(l.Items)
}

// Head returns the first element as an unquoted symbol, or "" when the list
// is empty or starts with something else.
func (l *List) Head() string {
	if len(l.Items) == 0 {
		return ""
	}
	if a, ok := l.Items[0].(*Atom); ok && !a.Quoted {
		return a.Value
	}
	return ""
}

// Atom returns element i as an atom.
func (l *List) Atom(i int) (*Atom, error) {
	if i < 0 || i >= len(l.Items) {
		return nil, fmt.Errorf("line %d: %s: missing argument %d", l.line, l.Head(), i)
	}
	a, ok := l.Items[i].(*Atom)
	if !ok {
		return nil, fmt.Errorf("line %d: %s: argument %d is a list", l.line, l.Head(), i)
	}
	return a, nil
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, elem := range l.Items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(elem.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Parse parses every top-level S-expression from r.
func Parse(r io.Reader) ([]Sexp, error) {
	return NewParser(r).ParseAll()
}

// ParseString parses every top-level S-expression in s.
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}
