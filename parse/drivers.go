package parse

// Feeder produces the next chunk of input for a suspended parse. Returning
// an empty chunk signals that no more data will arrive. A feeder may block
// on I/O; the engine itself performs none.
type Feeder[S any] func() S

// Parse runs p once against input, starting at offset zero with more data
// expected. It is the run primitive: the result may be Partial, in which
// case the caller resumes it through Feed. On success the leftover chunk
// is the buffer from the final offset to its end.
func Parse[S, E, A any](src Source[S, E], p Parser[S, E, A], input S) Result[S] {
	st := State[S, E]{Src: src, Buf: input, Off: 0, More: MoreExpected}
	return p(st,
		func(st State[S, E], err *Error) Result[S] {
			return Failed[S]{Err: err}
		},
		func(st State[S, E], value A) Result[S] {
			return Done[S]{
				Rest:  st.Src.Slice(st.Buf, st.Off, st.remaining()),
				Value: value,
			}
		})
}

// ParseFeed runs p against input and resumes every suspension with a chunk
// pulled from feed, until the parse settles. The feeder is invoked
// synchronously, once per suspension. The returned leftover covers only
// input that was actually fed: when the parse settles exactly at a chunk
// boundary, chunks the feeder was never asked for remain with the feeder.
func ParseFeed[S, E, A any](src Source[S, E], feed Feeder[S], p Parser[S, E, A], input S) (A, S, error) {
	res := Parse(src, p, input)
	for {
		switch r := res.(type) {
		case Done[S]:
			return r.Value.(A), r.Rest, nil
		case Failed[S]:
			var value A
			var rest S
			return value, rest, r.Err
		case Partial[S]:
			res = r.Feed(feed())
		}
	}
}

// ParseOnly runs p against input as the complete data. A suspension is
// resumed exactly once with an empty chunk to flush a pending request for
// more input; a parse that still has not settled after that fails with
// ErrIncomplete.
func ParseOnly[S, E, A any](src Source[S, E], p Parser[S, E, A], input S) (A, S, error) {
	res := Parse(src, p, input)
	if pr, ok := res.(Partial[S]); ok {
		var empty S
		res = pr.Feed(empty)
	}
	switch r := res.(type) {
	case Done[S]:
		return r.Value.(A), r.Rest, nil
	case Failed[S]:
		var value A
		var rest S
		return value, rest, r.Err
	}
	var value A
	var rest S
	return value, rest, incomplete()
}
