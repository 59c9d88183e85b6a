package parse

// Result is the outcome of advancing a parse: Done, Failed, or Partial.
// Only Parse returns Partial; ParseFeed and ParseOnly always settle to a
// terminal outcome.
type Result[S any] interface {
	result()
}

// Done is a successful parse: the produced value and the leftover chunk of
// unconsumed input.
//
// Value is stored untyped because the engine erases the answer type inside
// the continuation chain; the typed drivers recover it.
type Done[S any] struct {
	Rest  S
	Value any
}

// Failed is a parse that ended in a structured error.
type Failed[S any] struct {
	Err *Error
}

// Partial is a suspended parse. Feed resumes it with the next chunk of
// input; an empty chunk signals that no more data will arrive. Feed is
// one-shot: calling it a second time re-enters state that has already
// moved on, and the behavior is undefined.
type Partial[S any] struct {
	Feed func(chunk S) Result[S]
}

func (Done[S]) result()    {}
func (Failed[S]) result()  {}
func (Partial[S]) result() {}
