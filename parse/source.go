package parse

// Source describes how the engine reads one input representation. S is the
// sequence type, used both for the accumulated buffer and for chunks (fed
// increments and matched spans); E is the element type.
//
// Implementations are expected to be stateless values; all parse state
// lives in State and is threaded through continuations.
type Source[S, E any] interface {
	// Length reports the number of elements in s.
	Length(s S) int
	// At returns the element at offset i. Callers bound-check first;
	// out-of-range offsets may panic.
	At(s S, i int) E
	// Empty reports whether a chunk holds no elements. An empty fed
	// chunk marks the end of input.
	Empty(s S) bool
	// Append logically concatenates b onto a.
	Append(a, b S) S
	// Slice extracts n elements starting at off. Callers bound-check
	// first; out-of-range slices may panic.
	Slice(s S, off, n int) S
	// Span scans forward from off while pred holds, stopping at the end
	// of s. It returns the matched chunk and the offset of the first
	// element not matched. Reaching the end of s is not the end of the
	// input: more data may extend the match later.
	Span(s S, off int, pred func(E) bool) (S, int)
	// Equal reports whether two chunks hold the same elements.
	Equal(a, b S) bool
}

// More reports whether the feeder may still supply additional chunks.
type More int

const (
	// MoreExpected means running out of buffer suspends the parse to ask
	// for another chunk.
	MoreExpected More = iota
	// EndOfInput means the feeder has supplied an empty chunk; running
	// out of buffer fails immediately.
	EndOfInput
)

// State is the position of a parse: the accumulated buffer, the current
// offset into it, and the more-data flag. States are passed by value and
// never mutated in place; every combinator hands a fresh State to the next
// continuation. The buffer only ever grows within one parse, which is what
// allows backtracking to replay from a saved offset.
type State[S, E any] struct {
	Src  Source[S, E]
	Buf  S
	Off  int
	More More
}

// remaining reports how many buffered elements are available at the
// current offset.
func (st State[S, E]) remaining() int {
	return st.Src.Length(st.Buf) - st.Off
}
