package interval

import "fmt"

// rawKind tags the ten canonical shapes a RawInterval can take.
type rawKind uint8

const (
	rawEmpty rawKind = iota
	rawPoint
	rawOpen
	rawLeftOpen
	rawRightOpen
	rawClosed
	rawUpTo
	rawUpFrom
	rawTo
	rawFrom
	rawFull
)

// RawInterval is a single interval over T in one of ten canonical shapes:
// Empty, Point, Open, LeftOpen, RightOpen, Closed, UpTo, UpFrom, To, From,
// or Full. Values are always constructed in normalized form, either via
// New or one of the package-level constructors below.
type RawInterval[T any] struct {
	kind rawKind
	lo   T
	hi   T
}

// EmptyInterval returns the canonical empty interval.
func EmptyInterval[T any]() RawInterval[T] {
	return RawInterval[T]{kind: rawEmpty}
}

// FullInterval returns the interval containing every point of the domain.
func FullInterval[T any]() RawInterval[T] {
	return RawInterval[T]{kind: rawFull}
}

// PointInterval returns the degenerate interval containing only p.
func PointInterval[T any](p T) RawInterval[T] {
	return RawInterval[T]{kind: rawPoint, lo: p}
}

// New is the canonicalizing constructor: it maps any pair of Bounds to
// the unique canonical RawInterval, and never produces a shape other
// than the ten listed above.
func New[T any](lb, ub Bound[T], cmp func(T, T) int) RawInterval[T] {
	switch {
	case lb.IsInfinite() && ub.IsInfinite():
		return RawInterval[T]{kind: rawFull}

	case lb.IsInfinite():
		r, ok := ub.Value()
		if !ok {
			panic("interval: New: upper bound carries no value")
		}
		if ub.IsInclude() {
			return RawInterval[T]{kind: rawTo, hi: r}
		}
		return RawInterval[T]{kind: rawUpTo, hi: r}

	case ub.IsInfinite():
		l, ok := lb.Value()
		if !ok {
			panic("interval: New: lower bound carries no value")
		}
		if lb.IsInclude() {
			return RawInterval[T]{kind: rawFrom, lo: l}
		}
		return RawInterval[T]{kind: rawUpFrom, lo: l}
	}

	l, _ := lb.Value()
	r, _ := ub.Value()

	c := cmp(l, r)
	switch {
	case c > 0:
		return RawInterval[T]{kind: rawEmpty}
	case c == 0:
		if lb.IsInclude() && ub.IsInclude() {
			return RawInterval[T]{kind: rawPoint, lo: l}
		}
		// Any open/half-open degenerate interval is empty.
		return RawInterval[T]{kind: rawEmpty}
	}

	switch {
	case lb.IsInclude() && ub.IsInclude():
		return RawInterval[T]{kind: rawClosed, lo: l, hi: r}
	case lb.IsInclude() && ub.IsExclude():
		return RawInterval[T]{kind: rawRightOpen, lo: l, hi: r}
	case lb.IsExclude() && ub.IsInclude():
		return RawInterval[T]{kind: rawLeftOpen, lo: l, hi: r}
	default:
		return RawInterval[T]{kind: rawOpen, lo: l, hi: r}
	}
}

// IsEmpty reports whether iv represents the empty set.
func (iv RawInterval[T]) IsEmpty() bool { return iv.kind == rawEmpty }

// IsFull reports whether iv represents the whole domain.
func (iv RawInterval[T]) IsFull() bool { return iv.kind == rawFull }

// IsPoint reports whether iv is a single degenerate point.
func (iv RawInterval[T]) IsPoint() bool { return iv.kind == rawPoint }

// Contains reports whether point lies in iv, respecting inclusion,
// exclusion, and infinity on either side.
func (iv RawInterval[T]) Contains(point T, cmp func(T, T) int) bool {
	switch iv.kind {
	case rawEmpty:
		return false
	case rawFull:
		return true
	case rawPoint:
		return cmp(point, iv.lo) == 0
	case rawOpen:
		return cmp(iv.lo, point) < 0 && cmp(point, iv.hi) < 0
	case rawLeftOpen:
		return cmp(iv.lo, point) < 0 && cmp(point, iv.hi) <= 0
	case rawRightOpen:
		return cmp(iv.lo, point) <= 0 && cmp(point, iv.hi) < 0
	case rawClosed:
		return cmp(iv.lo, point) <= 0 && cmp(point, iv.hi) <= 0
	case rawUpTo:
		return cmp(point, iv.hi) < 0
	case rawTo:
		return cmp(point, iv.hi) <= 0
	case rawUpFrom:
		return cmp(iv.lo, point) < 0
	case rawFrom:
		return cmp(iv.lo, point) <= 0
	default:
		panic("interval: Contains: unreachable raw kind")
	}
}

// lowerBound returns the lower Bound of iv: Include(p) for a Point,
// Infinite for the forms unbounded below (including Full). It panics for
// Empty, which has no bound at all.
func (iv RawInterval[T]) lowerBound() Bound[T] {
	switch iv.kind {
	case rawPoint:
		return Include(iv.lo)
	case rawOpen, rawUpFrom:
		return Exclude(iv.lo)
	case rawLeftOpen:
		return Exclude(iv.lo)
	case rawRightOpen, rawClosed, rawFrom:
		return Include(iv.lo)
	case rawUpTo, rawTo, rawFull:
		return Infinite[T]()
	default:
		panic("interval: lowerBound: unreachable raw kind")
	}
}

func (iv RawInterval[T]) upperBound() Bound[T] {
	switch iv.kind {
	case rawPoint:
		return Include(iv.lo)
	case rawOpen, rawRightOpen, rawUpTo:
		return Exclude(iv.hi)
	case rawLeftOpen, rawClosed, rawTo:
		return Include(iv.hi)
	case rawUpFrom, rawFrom, rawFull:
		return Infinite[T]()
	default:
		panic("interval: upperBound: unreachable raw kind")
	}
}

// Intersect returns the canonical intersection of iv and other as a
// single interval. Disjoint inputs yield Empty.
func (iv RawInterval[T]) Intersect(other RawInterval[T], cmp func(T, T) int) RawInterval[T] {
	if iv.IsEmpty() || other.IsEmpty() {
		return EmptyInterval[T]()
	}
	if iv.IsFull() {
		return other
	}
	if other.IsFull() {
		return iv
	}
	if iv.IsPoint() {
		if other.Contains(iv.lo, cmp) {
			return iv
		}
		return EmptyInterval[T]()
	}
	if other.IsPoint() {
		if iv.Contains(other.lo, cmp) {
			return other
		}
		return EmptyInterval[T]()
	}

	lb := maxLowerBound(iv.lowerBound(), other.lowerBound(), cmp)
	ub := minUpperBound(iv.upperBound(), other.upperBound(), cmp)
	return New(lb, ub, cmp)
}

// maxLowerBound returns whichever lower bound excludes more (is further
// "right"); at equal values an Exclude on either side dominates, and only
// two Includes at the same point keep it included.
func maxLowerBound[T any](a, b Bound[T], cmp func(T, T) int) Bound[T] {
	if a.IsInfinite() {
		return b
	}
	if b.IsInfinite() {
		return a
	}
	av, _ := a.Value()
	bv, _ := b.Value()
	switch c := cmp(av, bv); {
	case c > 0:
		return a
	case c < 0:
		return b
	default:
		if a.IsExclude() || b.IsExclude() {
			return Exclude(av)
		}
		return a
	}
}

func minUpperBound[T any](a, b Bound[T], cmp func(T, T) int) Bound[T] {
	if a.IsInfinite() {
		return b
	}
	if b.IsInfinite() {
		return a
	}
	av, _ := a.Value()
	bv, _ := b.Value()
	switch c := cmp(av, bv); {
	case c < 0:
		return a
	case c > 0:
		return b
	default:
		if a.IsExclude() || b.IsExclude() {
			return Exclude(av)
		}
		return a
	}
}

// Closure converts every finite excluded endpoint to included; Empty,
// Full, and Point values are unchanged.
func (iv RawInterval[T]) Closure() RawInterval[T] {
	switch iv.kind {
	case rawOpen:
		return RawInterval[T]{kind: rawClosed, lo: iv.lo, hi: iv.hi}
	case rawLeftOpen:
		return RawInterval[T]{kind: rawClosed, lo: iv.lo, hi: iv.hi}
	case rawRightOpen:
		return RawInterval[T]{kind: rawClosed, lo: iv.lo, hi: iv.hi}
	case rawUpTo:
		return RawInterval[T]{kind: rawTo, hi: iv.hi}
	case rawUpFrom:
		return RawInterval[T]{kind: rawFrom, lo: iv.lo}
	default:
		return iv
	}
}

func (iv RawInterval[T]) String() string {
	switch iv.kind {
	case rawEmpty:
		return "Empty"
	case rawFull:
		return "(-inf, +inf)"
	case rawPoint:
		return fmt.Sprintf("{%v}", iv.lo)
	case rawOpen:
		return fmt.Sprintf("(%v, %v)", iv.lo, iv.hi)
	case rawLeftOpen:
		return fmt.Sprintf("(%v, %v]", iv.lo, iv.hi)
	case rawRightOpen:
		return fmt.Sprintf("[%v, %v)", iv.lo, iv.hi)
	case rawClosed:
		return fmt.Sprintf("[%v, %v]", iv.lo, iv.hi)
	case rawUpTo:
		return fmt.Sprintf("(-inf, %v)", iv.hi)
	case rawTo:
		return fmt.Sprintf("(-inf, %v]", iv.hi)
	case rawUpFrom:
		return fmt.Sprintf("(%v, +inf)", iv.lo)
	case rawFrom:
		return fmt.Sprintf("[%v, +inf)", iv.lo)
	default:
		return "?"
	}
}
