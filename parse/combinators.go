package parse

// AnyElement consumes exactly one element.
func AnyElement[S, E any]() Parser[S, E, E] {
	return func(st State[S, E], fail Failure[S, E], succeed Success[S, E, E]) Result[S] {
		return ensure(1, st, fail, func(st State[S, E]) Result[S] {
			e := st.Src.At(st.Buf, st.Off)
			st.Off++
			return succeed(st, e)
		})
	}
}

// Satisfy consumes one element if pred holds for it. The desc is used in
// the failure message and may be empty.
func Satisfy[S, E any](pred func(E) bool, desc string) Parser[S, E, E] {
	return func(st State[S, E], fail Failure[S, E], succeed Success[S, E, E]) Result[S] {
		return ensure(1, st, fail, func(st State[S, E]) Result[S] {
			e := st.Src.At(st.Buf, st.Off)
			if !pred(e) {
				return fail(st, predicateFailed(desc))
			}
			st.Off++
			return succeed(st, e)
		})
	}
}

// Element consumes one element and requires it to equal want.
func Element[S any, E comparable](want E) Parser[S, E, E] {
	return func(st State[S, E], fail Failure[S, E], succeed Success[S, E, E]) Result[S] {
		return ensure(1, st, fail, func(st State[S, E]) Result[S] {
			got := st.Src.At(st.Buf, st.Off)
			if got != want {
				return fail(st, elementMismatch(want, got))
			}
			st.Off++
			return succeed(st, got)
		})
	}
}

// Elements consumes a literal chunk equal to want and produces it. A match
// may straddle chunk boundaries: whatever prefix the buffer already holds
// is compared first, and the remainder is matched once more data arrives.
func Elements[S, E any](want S) Parser[S, E, S] {
	return func(st State[S, E], fail Failure[S, E], succeed Success[S, E, S]) Result[S] {
		src := st.Src
		var match func(st State[S, E], rest S) Result[S]
		match = func(st State[S, E], rest S) Result[S] {
			need := src.Length(rest)
			if need == 0 {
				return succeed(st, want)
			}
			avail := st.remaining()
			if avail >= need {
				got := src.Slice(st.Buf, st.Off, need)
				if !src.Equal(got, rest) {
					return fail(st, sequenceMismatch(rest, got))
				}
				st.Off += need
				return succeed(st, want)
			}
			if avail > 0 {
				got := src.Slice(st.Buf, st.Off, avail)
				if !src.Equal(got, src.Slice(rest, 0, avail)) {
					return fail(st, sequenceMismatch(rest, got))
				}
			}
			if st.More == EndOfInput {
				return fail(st, needInput(need))
			}
			st.Off += avail
			tail := src.Slice(rest, avail, need-avail)
			return prompt(st,
				func(st State[S, E]) Result[S] { return fail(st, needInput(need-avail)) },
				func(st State[S, E]) Result[S] { return match(st, tail) })
		}
		return match(st, want)
	}
}

// Take consumes exactly n elements and produces them as one chunk,
// accumulating across refills when the buffer currently holds fewer.
func Take[S, E any](n int) Parser[S, E, S] {
	if n < 0 {
		n = 0
	}
	return func(st State[S, E], fail Failure[S, E], succeed Success[S, E, S]) Result[S] {
		return ensure(n, st, fail, func(st State[S, E]) Result[S] {
			out := st.Src.Slice(st.Buf, st.Off, n)
			st.Off += n
			return succeed(st, out)
		})
	}
}

// Skip consumes exactly n elements and discards them.
func Skip[S, E any](n int) Parser[S, E, Unit] {
	return Map(Take[S, E](n), func(S) Unit { return Unit{} })
}

// TakeWhile consumes the maximal prefix whose elements satisfy pred. When
// the match runs to the buffer end and more data may arrive, it asks for
// another chunk and keeps scanning, so matches span chunk boundaries. It
// never fails; zero matching elements produce an empty chunk.
func TakeWhile[S, E any](pred func(E) bool) Parser[S, E, S] {
	return func(st State[S, E], fail Failure[S, E], succeed Success[S, E, S]) Result[S] {
		start := st.Off
		var scan func(State[S, E]) Result[S]
		scan = func(st State[S, E]) Result[S] {
			_, end := st.Src.Span(st.Buf, st.Off, pred)
			st.Off = end
			if st.remaining() == 0 && st.More == MoreExpected {
				return prompt(st, scan, scan)
			}
			return succeed(st, st.Src.Slice(st.Buf, start, st.Off-start))
		}
		return scan(st)
	}
}

// SkipWhile consumes the maximal prefix satisfying pred and discards it.
func SkipWhile[S, E any](pred func(E) bool) Parser[S, E, Unit] {
	return Map(TakeWhile[S, E](pred), func(S) Unit { return Unit{} })
}

// TakeAll consumes every remaining element, requesting chunks until the
// feeder signals the end of input, and produces everything consumed since
// the call began.
func TakeAll[S, E any]() Parser[S, E, S] {
	return TakeWhile[S, E](func(E) bool { return true })
}

// SkipAll consumes every remaining element and discards it.
func SkipAll[S, E any]() Parser[S, E, Unit] {
	return Map(TakeAll[S, E](), func(S) Unit { return Unit{} })
}
