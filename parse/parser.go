package parse

// Failure receives the state at the point of failure and a structured
// error, and decides how the parse continues. The driver installs one that
// produces Failed; OrElse installs one that backtracks.
type Failure[S, E any] func(st State[S, E], err *Error) Result[S]

// Success receives the state after a parser consumed its input and the
// value it produced.
type Success[S, E, A any] func(st State[S, E], value A) Result[S]

// Parser is a suspended computation over input of type S with elements of
// type E, producing a value of type A. Running it either settles into the
// failure or success continuation, or returns Partial when more input is
// required.
type Parser[S, E, A any] func(st State[S, E], fail Failure[S, E], succeed Success[S, E, A]) Result[S]

// Unit is the value of parsers that consume input but produce nothing.
type Unit struct{}

// Succeed produces v without consuming input.
func Succeed[S, E, A any](v A) Parser[S, E, A] {
	return func(st State[S, E], fail Failure[S, E], succeed Success[S, E, A]) Result[S] {
		return succeed(st, v)
	}
}

// FailWith fails with err without consuming input.
func FailWith[S, E, A any](err *Error) Parser[S, E, A] {
	return func(st State[S, E], fail Failure[S, E], succeed Success[S, E, A]) Result[S] {
		return fail(st, err)
	}
}

// Map transforms the value produced by p.
func Map[S, E, A, B any](p Parser[S, E, A], f func(A) B) Parser[S, E, B] {
	return func(st State[S, E], fail Failure[S, E], succeed Success[S, E, B]) Result[S] {
		return p(st, fail, func(st State[S, E], a A) Result[S] {
			return succeed(st, f(a))
		})
	}
}

// Bind runs p, then runs the parser built from its value. The failure
// continuation is propagated unchanged, so a failure anywhere in the chain
// surfaces at the nearest enclosing alternative.
//
// If p stops exactly at the buffer end while more data may arrive, Bind
// probes the feeder for one chunk before entering the next parser. The
// next parser's first element access would suspend immediately anyway;
// probing here saves that round trip and lets an empty response mark the
// end of input instead of spuriously re-suspending.
func Bind[S, E, A, B any](p Parser[S, E, A], f func(A) Parser[S, E, B]) Parser[S, E, B] {
	return func(st State[S, E], fail Failure[S, E], succeed Success[S, E, B]) Result[S] {
		return p(st, fail, func(st State[S, E], a A) Result[S] {
			q := f(a)
			run := func(st State[S, E]) Result[S] {
				return q(st, fail, succeed)
			}
			if st.More == MoreExpected && st.remaining() == 0 {
				return prompt(st, run, run)
			}
			return run(st)
		})
	}
}

// Then runs p, discards its value, and runs q.
func Then[S, E, A, B any](p Parser[S, E, A], q Parser[S, E, B]) Parser[S, E, B] {
	return Bind(p, func(A) Parser[S, E, B] { return q })
}

// OrElse runs p; if it fails, q runs from the offset where p started.
// The buffer is never truncated, so everything p consumed before failing
// is still there for q to re-read, including chunks fed while p was
// running. This is unlimited-lookahead backtracking, paid for by retaining
// the abandoned input in memory.
func OrElse[S, E, A any](p, q Parser[S, E, A]) Parser[S, E, A] {
	return func(st State[S, E], fail Failure[S, E], succeed Success[S, E, A]) Result[S] {
		saved := st.Off
		return p(st, func(st State[S, E], _ *Error) Result[S] {
			st.Off = saved
			return q(st, fail, succeed)
		}, succeed)
	}
}

// prompt suspends the parse until the feeder supplies a chunk. An empty
// chunk flips the flag to EndOfInput and resumes through lose; otherwise
// the chunk is appended to the buffer and the parse resumes through win.
func prompt[S, E any](st State[S, E], lose, win func(State[S, E]) Result[S]) Result[S] {
	return Partial[S]{Feed: func(chunk S) Result[S] {
		if st.Src.Empty(chunk) {
			st.More = EndOfInput
			return lose(st)
		}
		st.Buf = st.Src.Append(st.Buf, chunk)
		return win(st)
	}}
}

// ensure continues into ok once n elements are available at the current
// offset, suspending for more input as often as needed. Once no more data
// can arrive it fails with ErrNeedInput.
func ensure[S, E any](n int, st State[S, E], fail Failure[S, E], ok func(State[S, E]) Result[S]) Result[S] {
	if st.remaining() >= n {
		return ok(st)
	}
	if st.More == EndOfInput {
		return fail(st, needInput(n))
	}
	retry := func(st State[S, E]) Result[S] {
		return ensure(n, st, fail, ok)
	}
	return prompt(st, retry, retry)
}
