// Package text adapts the parse engine to string input with byte
// elements, and pre-instantiates the combinator surface so call sites can
// stay free of type arguments.
package text

import "github.com/dhamidi/parsek/parse"

// Source implements parse.Source over strings. Elements are bytes; rune
// parsing belongs to seq.Source[rune] over []rune input.
type Source struct{}

func (Source) Length(s string) int { return len(s) }

func (Source) At(s string, i int) byte { return s[i] }

func (Source) Empty(s string) bool { return len(s) == 0 }

func (Source) Append(a, b string) string { return a + b }

func (Source) Slice(s string, off, n int) string { return s[off : off+n] }

func (Source) Span(s string, off int, pred func(byte) bool) (string, int) {
	end := off
	for end < len(s) && pred(s[end]) {
		end++
	}
	return s[off:end], end
}

func (Source) Equal(a, b string) bool { return a == b }

// Parser is a parse.Parser specialized to string input.
type Parser[A any] = parse.Parser[string, byte, A]

// AnyByte consumes one byte.
func AnyByte() Parser[byte] {
	return parse.AnyElement[string, byte]()
}

// Byte consumes one byte equal to b.
func Byte(b byte) Parser[byte] {
	return parse.Element[string](b)
}

// Satisfy consumes one byte for which pred holds.
func Satisfy(pred func(byte) bool, desc string) Parser[byte] {
	return parse.Satisfy[string](pred, desc)
}

// String consumes the literal s.
func String(s string) Parser[string] {
	return parse.Elements[string, byte](s)
}

// Take consumes exactly n bytes.
func Take(n int) Parser[string] {
	return parse.Take[string, byte](n)
}

// Skip consumes and discards exactly n bytes.
func Skip(n int) Parser[parse.Unit] {
	return parse.Skip[string, byte](n)
}

// TakeWhile consumes the maximal prefix of bytes satisfying pred.
func TakeWhile(pred func(byte) bool) Parser[string] {
	return parse.TakeWhile[string](pred)
}

// SkipWhile consumes and discards the maximal prefix satisfying pred.
func SkipWhile(pred func(byte) bool) Parser[parse.Unit] {
	return parse.SkipWhile[string](pred)
}

// TakeAll consumes everything up to the end of input.
func TakeAll() Parser[string] {
	return parse.TakeAll[string, byte]()
}

// SkipAll consumes and discards everything up to the end of input.
func SkipAll() Parser[parse.Unit] {
	return parse.SkipAll[string, byte]()
}

// Parse runs p against input; the result may be a suspension.
func Parse[A any](p Parser[A], input string) parse.Result[string] {
	return parse.Parse(Source{}, p, input)
}

// ParseFeed runs p, pulling additional chunks from feed as needed.
func ParseFeed[A any](feed parse.Feeder[string], p Parser[A], input string) (A, string, error) {
	return parse.ParseFeed(Source{}, feed, p, input)
}

// ParseOnly runs p against input as the complete data.
func ParseOnly[A any](p Parser[A], input string) (A, string, error) {
	return parse.ParseOnly(Source{}, p, input)
}
