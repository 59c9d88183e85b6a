package parse

import "fmt"

// Count is a non-negative repetition count with a saturating predecessor:
// decrementing Never stays at Never. The zero value is Never.
type Count struct {
	n int
}

var (
	Never = Count{0}
	Once  = Count{1}
	Twice = Count{2}
)

// Times builds a Count from an integer, clamping negatives to Never.
func Times(n int) Count {
	if n < 0 {
		n = 0
	}
	return Count{n}
}

// Pred is the saturating predecessor.
func (c Count) Pred() Count {
	if c.n == 0 {
		return c
	}
	return Count{c.n - 1}
}

// IsNever reports whether the count is zero.
func (c Count) IsNever() bool { return c.n == 0 }

// Int returns the count as an integer.
func (c Count) Int() int { return c.n }

func (c Count) String() string {
	return fmt.Sprintf("%d", c.n)
}

// Range describes a closed interval of required repetitions for Repeat:
// either an exact count or anything between a lower and an upper bound.
type Range struct {
	lo, hi  Count
	between bool
}

// Exactly requires precisely c repetitions.
func Exactly(c Count) Range {
	return Range{lo: c, hi: c}
}

// Between requires at least lo and at most hi repetitions.
func Between(lo, hi Count) Range {
	return Range{lo: lo, hi: hi, between: true}
}

// Min is the lower bound of the range.
func (r Range) Min() Count { return r.lo }

// Max is the upper bound of the range.
func (r Range) Max() Count { return r.hi }

// pred decrements both bounds, saturating at Never.
func (r Range) pred() Range {
	return Range{lo: r.lo.Pred(), hi: r.hi.Pred(), between: r.between}
}

func (r Range) String() string {
	if !r.between {
		return fmt.Sprintf("exactly %s", r.lo)
	}
	return fmt.Sprintf("between %s and %s", r.lo, r.hi)
}
