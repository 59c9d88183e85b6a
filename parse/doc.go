// Package parse implements incremental, backtracking parser combinators.
//
// # Overview
//
// A parser built from this package consumes an abstract sequence of
// elements — text, byte buffers, or generic slices — without requiring the
// whole input up front. When a combinator runs out of buffered input while
// more data may still arrive, the parse suspends: the caller receives a
// Partial result holding a resume function and supplies the next chunk
// whenever it becomes available. Feeding an empty chunk signals that no
// more data will ever arrive.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Source    │────▶│   Engine    │────▶│   Result    │
//	│ (elements)  │     │ (CPS core)  │     │ Done/Failed │
//	└─────────────┘     └─────────────┘     │  /Partial   │
//	                           ▲            └──────┬──────┘
//	                           │     feed chunk    │
//	                           └───────────────────┘
//
// A Parser is a function from the current state (buffer, offset, more-data
// flag) and a pair of continuations to a Result. The continuation-passing
// shape is what makes suspension transparent: a primitive that needs more
// input returns Partial, and resuming simply re-enters the same logical
// operation against the enlarged buffer. No combinator needs to know
// whether it was suspended partway through a larger composite.
//
// # Backtracking
//
// The buffer grows monotonically and is never truncated, so OrElse can
// restart its second branch from the exact offset where the first branch
// started, no matter how much the failed branch consumed. The cost is that
// all consumed-but-abandoned input stays in memory for the duration of the
// parse.
//
// # Drivers
//
// Parse runs a parser once and may surface a suspension. ParseFeed loops a
// caller-supplied Feeder until the parse settles. ParseOnly probes a single
// suspension with an empty chunk and reports an incomplete parse as an
// error. Given the same sequence of fed chunks the same outcome is always
// produced; there is no shared state between parses.
//
// # Example
//
//	src := text.Source{}
//	p := parse.Bind(text.Take(2), func(prefix string) text.Parser[string] {
//		return parse.Then(text.Byte(' '), parse.Succeed[string, byte](prefix))
//	})
//	value, rest, err := parse.ParseFeed(src, feeder, p, "")
package parse
