// Package seq adapts the parse engine to slice input over any comparable
// element type.
package seq

import "github.com/dhamidi/parsek/parse"

// Source implements parse.Source over []E.
type Source[E comparable] struct{}

func (Source[E]) Length(s []E) int { return len(s) }

func (Source[E]) At(s []E, i int) E { return s[i] }

func (Source[E]) Empty(s []E) bool { return len(s) == 0 }

// Append concatenates without aliasing the first slice's spare capacity:
// earlier states keep referring to their prefix of the buffer.
func (Source[E]) Append(a, b []E) []E {
	return append(a[:len(a):len(a)], b...)
}

func (Source[E]) Slice(s []E, off, n int) []E {
	return s[off : off+n : off+n]
}

func (Source[E]) Span(s []E, off int, pred func(E) bool) ([]E, int) {
	end := off
	for end < len(s) && pred(s[end]) {
		end++
	}
	return s[off:end:end], end
}

func (Source[E]) Equal(a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Parser is a parse.Parser specialized to slice input.
type Parser[E comparable, A any] = parse.Parser[[]E, E, A]

// Any consumes one element.
func Any[E comparable]() Parser[E, E] {
	return parse.AnyElement[[]E, E]()
}

// Elem consumes one element equal to e.
func Elem[E comparable](e E) Parser[E, E] {
	return parse.Element[[]E](e)
}

// Satisfy consumes one element for which pred holds.
func Satisfy[E comparable](pred func(E) bool, desc string) Parser[E, E] {
	return parse.Satisfy[[]E](pred, desc)
}

// Literal consumes the literal sequence want.
func Literal[E comparable](want []E) Parser[E, []E] {
	return parse.Elements[[]E, E](want)
}

// Take consumes exactly n elements.
func Take[E comparable](n int) Parser[E, []E] {
	return parse.Take[[]E, E](n)
}

// Skip consumes and discards exactly n elements.
func Skip[E comparable](n int) Parser[E, parse.Unit] {
	return parse.Skip[[]E, E](n)
}

// TakeWhile consumes the maximal prefix satisfying pred.
func TakeWhile[E comparable](pred func(E) bool) Parser[E, []E] {
	return parse.TakeWhile[[]E](pred)
}

// SkipWhile consumes and discards the maximal prefix satisfying pred.
func SkipWhile[E comparable](pred func(E) bool) Parser[E, parse.Unit] {
	return parse.SkipWhile[[]E](pred)
}

// TakeAll consumes everything up to the end of input.
func TakeAll[E comparable]() Parser[E, []E] {
	return parse.TakeAll[[]E, E]()
}

// SkipAll consumes and discards everything up to the end of input.
func SkipAll[E comparable]() Parser[E, parse.Unit] {
	return parse.SkipAll[[]E, E]()
}

// Parse runs p against input; the result may be a suspension.
func Parse[E comparable, A any](p Parser[E, A], input []E) parse.Result[[]E] {
	return parse.Parse(Source[E]{}, p, input)
}

// ParseFeed runs p, pulling additional chunks from feed as needed.
func ParseFeed[E comparable, A any](feed parse.Feeder[[]E], p Parser[E, A], input []E) (A, []E, error) {
	return parse.ParseFeed(Source[E]{}, feed, p, input)
}

// ParseOnly runs p against input as the complete data.
func ParseOnly[E comparable, A any](p Parser[E, A], input []E) (A, []E, error) {
	return parse.ParseOnly(Source[E]{}, p, input)
}
