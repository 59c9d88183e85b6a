package parse

// Option is the result of an Optional parse.
type Option[A any] struct {
	Value A
	OK    bool
}

// Optional runs p and wraps its value; if p fails, Optional succeeds with
// an absent Option and the position is restored to the point before p ran.
func Optional[S, E, A any](p Parser[S, E, A]) Parser[S, E, Option[A]] {
	present := Map(p, func(a A) Option[A] { return Option[A]{Value: a, OK: true} })
	return OrElse(present, Succeed[S, E](Option[A]{}))
}

// Many repeats p zero or more times until it fails, collecting the values.
// The position is restored after the final failing attempt. A p that
// succeeds without consuming input makes Many loop forever.
func Many[S, E, A any](p Parser[S, E, A]) Parser[S, E, []A] {
	var loop func(acc []A) Parser[S, E, []A]
	loop = func(acc []A) Parser[S, E, []A] {
		step := Bind(p, func(a A) Parser[S, E, []A] {
			return loop(append(acc[:len(acc):len(acc)], a))
		})
		return OrElse(step, Succeed[S, E](acc))
	}
	return loop(nil)
}

// Some is Many requiring at least one success.
func Some[S, E, A any](p Parser[S, E, A]) Parser[S, E, []A] {
	return Bind(p, func(a A) Parser[S, E, []A] {
		return Map(Many(p), func(rest []A) []A {
			return append([]A{a}, rest...)
		})
	})
}

// Repeat runs p according to the repetition range r. Once the upper bound
// is exhausted it stops without attempting p again. A failing attempt ends
// the repetition: successfully, if the lower bound already permits
// stopping, or with an error naming the unmet range otherwise.
func Repeat[S, E, A any](r Range, p Parser[S, E, A]) Parser[S, E, []A] {
	var loop func(r Range, acc []A) Parser[S, E, []A]
	loop = func(r Range, acc []A) Parser[S, E, []A] {
		if r.Max().IsNever() {
			return Succeed[S, E](acc)
		}
		return Bind(Optional(p), func(opt Option[A]) Parser[S, E, []A] {
			if !opt.OK {
				if r.Min().IsNever() {
					return Succeed[S, E](acc)
				}
				return FailWith[S, E, []A](predicateFailed(r.String() + " repetitions"))
			}
			return loop(r.pred(), append(acc[:len(acc):len(acc)], opt.Value))
		})
	}
	return loop(r, nil)
}
