package interval

import "fmt"

// tineKind tags the three shapes a Tine can take.
type tineKind uint8

const (
	tineLower tineKind = iota
	tineUpper
	tinePoint
)

// Tine is an oriented boundary marker used by TineSet to represent a
// (possibly disjoint) union of intervals as an ordered list of markers on
// the number line.
//
// Lower marks where the set opens (entering an included region). Upper
// marks where it closes. Point(Include) marks an isolated included point.
// Point(Exclude) marks a puncture: a single excluded point sitting between
// two otherwise contiguous included regions, simultaneously closing the
// interval on its left and opening the one on its right.
type Tine[T any] struct {
	kind  tineKind
	bound Bound[T]
}

// Lower returns the Tine marking the lower bound of an interval.
func Lower[T any](b Bound[T]) Tine[T] { return Tine[T]{kind: tineLower, bound: b} }

// Upper returns the Tine marking the upper bound of an interval.
func Upper[T any](b Bound[T]) Tine[T] { return Tine[T]{kind: tineUpper, bound: b} }

// PointTine returns the Tine marking a single location: an isolated
// included point, or a puncture between two included regions.
func PointTine[T any](b Bound[T]) Tine[T] {
	if b.IsInfinite() {
		panic("interval: PointTine: Point(Infinite) is illegal")
	}
	return Tine[T]{kind: tinePoint, bound: b}
}

// IsLowerBound reports whether t opens an interval: Lower, or a puncture
// (which both closes and reopens).
func (t Tine[T]) IsLowerBound() bool {
	return t.kind == tineLower || (t.kind == tinePoint && t.bound.IsExclude())
}

// IsUpperBound reports whether t closes an interval: Upper, or a puncture.
func (t Tine[T]) IsUpperBound() bool {
	return t.kind == tineUpper || (t.kind == tinePoint && t.bound.IsExclude())
}

// IsPointInclude reports whether t is an isolated included point.
func (t Tine[T]) IsPointInclude() bool {
	return t.kind == tinePoint && t.bound.IsInclude()
}

// IsPointExclude reports whether t is a puncture.
func (t Tine[T]) IsPointExclude() bool {
	return t.kind == tinePoint && t.bound.IsExclude()
}

// IsLowerInfinite reports whether t is the tree's leading Lower(Infinite)
// sentinel.
func (t Tine[T]) IsLowerInfinite() bool {
	return t.kind == tineLower && t.bound.IsInfinite()
}

// IsUpperInfinite reports whether t is the tree's trailing Upper(Infinite)
// sentinel.
func (t Tine[T]) IsUpperInfinite() bool {
	return t.kind == tineUpper && t.bound.IsInfinite()
}

// Bound returns the Tine's underlying boundary descriptor.
func (t Tine[T]) Bound() Bound[T] { return t.bound }

// Value returns the Tine's point and true, or the zero value and false if
// its Bound is Infinite.
func (t Tine[T]) Value() (T, bool) { return t.bound.Value() }

// SplitKind tags how many Tines a RawInterval decomposes into.
type SplitKind uint8

const (
	// SplitZero: the interval was Empty.
	SplitZero SplitKind = iota
	// SplitOne: the interval was a single Point.
	SplitOne
	// SplitTwo: the interval decomposed into a Lower and an Upper Tine.
	SplitTwo
)

// Split holds the 0, 1, or 2 Tines a RawInterval decomposes into.
type Split[T any] struct {
	Kind          SplitKind
	First, Second Tine[T]
}

// splitRawInterval returns the Tines representing iv, per the decomposition
// table:
//
//	Empty           -> zero tines
//	Point(p)        -> Point(Include(p))
//	Open(l,r)       -> Lower(Exclude(l)), Upper(Exclude(r))
//	LeftOpen(l,r)   -> Lower(Exclude(l)), Upper(Include(r))
//	RightOpen(l,r)  -> Lower(Include(l)), Upper(Exclude(r))
//	Closed(l,r)     -> Lower(Include(l)), Upper(Include(r))
//	UpTo(r)         -> Lower(Infinite),   Upper(Exclude(r))
//	UpFrom(l)       -> Lower(Exclude(l)), Upper(Infinite)
//	To(r)           -> Lower(Infinite),   Upper(Include(r))
//	From(l)         -> Lower(Include(l)), Upper(Infinite)
//	Full            -> Lower(Infinite),   Upper(Infinite)
func splitRawInterval[T any](iv RawInterval[T]) Split[T] {
	switch iv.kind {
	case rawEmpty:
		return Split[T]{Kind: SplitZero}
	case rawPoint:
		return Split[T]{Kind: SplitOne, First: PointTine(Include(iv.lo))}
	default:
		return Split[T]{Kind: SplitTwo, First: Lower(iv.lowerBound()), Second: Upper(iv.upperBound())}
	}
}

func (t Tine[T]) String() string {
	switch t.kind {
	case tineLower:
		return fmt.Sprintf("Lower(%v)", t.bound)
	case tineUpper:
		return fmt.Sprintf("Upper(%v)", t.bound)
	default:
		return fmt.Sprintf("Point(%v)", t.bound)
	}
}

// compareTines is the total order from spec §3: Lower(Infinite) is
// strictly least (equal only to itself), Upper(Infinite) is strictly
// greatest, otherwise tines compare by their underlying value — and two
// tines with the same value always compare equal regardless of side, so
// the tree can locate "the tine at this coordinate" with one lookup.
func compareTines[T any](a, b Tine[T], cmp func(T, T) int) int {
	aInf, bInf := a.bound.IsInfinite(), b.bound.IsInfinite()
	if !aInf && !bInf {
		return compareBound(a.bound, b.bound, cmp)
	}

	aLowerInf := aInf && a.kind == tineLower
	aUpperInf := aInf && a.kind == tineUpper
	bLowerInf := bInf && b.kind == tineLower
	bUpperInf := bInf && b.kind == tineUpper

	switch {
	case aLowerInf && bLowerInf:
		return 0
	case aUpperInf && bUpperInf:
		return 0
	case aLowerInf:
		return -1
	case aUpperInf:
		return 1
	case bLowerInf:
		return 1
	case bUpperInf:
		return -1
	default:
		panic("interval: compareTines: Point(Infinite) is illegal")
	}
}

// Union unifies two co-located tines (same underlying value) by including
// any point either side includes. ok is false if the boundary annihilates
// entirely, fusing the neighborhoods on either side.
func (t Tine[T]) Union(other Tine[T]) (Tine[T], bool) {
	switch {
	// Lower, Lower
	case t.kind == tineLower && other.kind == tineLower:
		return Lower(strongerLower(t.bound, other.bound)), true

	// Lower, Point
	case t.kind == tineLower && other.kind == tinePoint:
		v, _ := t.Value()
		switch {
		case t.bound.IsInclude() && other.bound.IsInclude():
			return Lower(Include(v)), true
		case t.bound.IsInclude() && other.bound.IsExclude():
			return Tine[T]{}, false
		case t.bound.IsExclude() && other.bound.IsInclude():
			return Lower(Include(v)), true
		default: // Exclude, Exclude
			return PointTine(Exclude(v)), true
		}

	// Lower, Upper
	case t.kind == tineLower && other.kind == tineUpper:
		v, _ := t.Value()
		if t.bound.IsExclude() && other.bound.IsExclude() {
			return PointTine(Exclude(v)), true
		}
		return Tine[T]{}, false

	// Point, Lower
	case t.kind == tinePoint && other.kind == tineLower:
		merged, ok := other.Union(t)
		return merged, ok

	// Point, Point
	case t.kind == tinePoint && other.kind == tinePoint:
		v, _ := t.Value()
		switch {
		case t.bound.IsInclude() && other.bound.IsInclude():
			return PointTine(Include(v)), true
		case t.bound.IsExclude() && other.bound.IsExclude():
			return PointTine(Exclude(v)), true
		default:
			return Tine[T]{}, false
		}

	// Point, Upper
	case t.kind == tinePoint && other.kind == tineUpper:
		merged, ok := other.Union(t)
		return merged, ok

	// Upper, Lower
	case t.kind == tineUpper && other.kind == tineLower:
		v, _ := t.Value()
		if t.bound.IsExclude() && other.bound.IsExclude() {
			return PointTine(Exclude(v)), true
		}
		return Tine[T]{}, false

	// Upper, Point
	case t.kind == tineUpper && other.kind == tinePoint:
		v, _ := t.Value()
		switch {
		case t.bound.IsInclude() && other.bound.IsInclude():
			return Upper(Include(v)), true
		case t.bound.IsInclude() && other.bound.IsExclude():
			return Tine[T]{}, false
		case t.bound.IsExclude() && other.bound.IsInclude():
			return Upper(Include(v)), true
		default:
			return PointTine(Exclude(v)), true
		}

	// Upper, Upper
	default:
		return Upper(strongerUpper(t.bound, other.bound)), true
	}
}

// strongerLower returns the more inclusive of two Lower bounds at the same
// value: Include beats Exclude.
func strongerLower[T any](a, b Bound[T]) Bound[T] {
	if a.IsInclude() || b.IsInclude() {
		v, _ := a.Value()
		return Include(v)
	}
	v, _ := a.Value()
	return Exclude(v)
}

func strongerUpper[T any](a, b Bound[T]) Bound[T] {
	return strongerLower(a, b)
}

// weakerLower returns the less inclusive of two Lower bounds at the same
// value: Exclude beats Include.
func weakerLower[T any](a, b Bound[T]) Bound[T] {
	if a.IsExclude() || b.IsExclude() {
		v, _ := a.Value()
		return Exclude(v)
	}
	v, _ := a.Value()
	return Include(v)
}

func weakerUpper[T any](a, b Bound[T]) Bound[T] {
	return weakerLower(a, b)
}

// Intersect unifies two co-located tines by excluding any point not
// included by both sides. ok is false if no point in the boundary region
// is included by both.
func (t Tine[T]) Intersect(other Tine[T]) (Tine[T], bool) {
	switch {
	case t.kind == tineLower && other.kind == tineLower:
		return Lower(weakerLower(t.bound, other.bound)), true

	case t.kind == tineLower && other.kind == tinePoint:
		v, _ := t.Value()
		switch {
		case t.bound.IsInclude() && other.bound.IsInclude():
			return PointTine(Include(v)), true
		case other.bound.IsExclude():
			return Lower(Exclude(v)), true
		default:
			return Tine[T]{}, false
		}

	case t.kind == tineLower && other.kind == tineUpper:
		v, _ := t.Value()
		if t.bound.IsInclude() && other.bound.IsInclude() {
			return PointTine(Include(v)), true
		}
		return Tine[T]{}, false

	case t.kind == tinePoint && other.kind == tineLower:
		v, _ := t.Value()
		switch {
		case t.bound.IsInclude() && other.bound.IsInclude():
			return PointTine(Include(v)), true
		case t.bound.IsExclude():
			return Lower(Exclude(v)), true
		default:
			return Tine[T]{}, false
		}

	case t.kind == tinePoint && other.kind == tinePoint:
		v, _ := t.Value()
		if t.bound.IsInclude() && other.bound.IsInclude() {
			return PointTine(Include(v)), true
		}
		if t.bound.IsExclude() && other.bound.IsExclude() {
			return PointTine(Exclude(v)), true
		}
		return Tine[T]{}, false

	case t.kind == tinePoint && other.kind == tineUpper:
		v, _ := t.Value()
		switch {
		case t.bound.IsInclude() && other.bound.IsInclude():
			return PointTine(Include(v)), true
		case t.bound.IsExclude():
			return Upper(Exclude(v)), true
		default:
			return Tine[T]{}, false
		}

	case t.kind == tineUpper && other.kind == tineLower:
		v, _ := t.Value()
		if t.bound.IsInclude() && other.bound.IsInclude() {
			return PointTine(Include(v)), true
		}
		return Tine[T]{}, false

	case t.kind == tineUpper && other.kind == tinePoint:
		v, _ := t.Value()
		switch {
		case t.bound.IsInclude() && other.bound.IsInclude():
			return PointTine(Include(v)), true
		case other.bound.IsExclude():
			return Upper(Exclude(v)), true
		default:
			return Tine[T]{}, false
		}

	default: // Upper, Upper
		return Upper(weakerUpper(t.bound, other.bound)), true
	}
}

// Minus unifies two co-located tines as self-minus-other, pointwise: the
// result includes a point iff self includes it and other does not.
func (t Tine[T]) Minus(other Tine[T]) (Tine[T], bool) {
	v, hasV := t.Value()
	if !hasV {
		v, _ = other.Value()
	}

	switch {
	case t.kind == tineLower && other.kind == tineLower:
		if t.bound.IsInclude() && other.bound.IsExclude() {
			return PointTine(Include(v)), true
		}
		return Tine[T]{}, false

	case t.kind == tineLower && other.kind == tinePoint:
		if other.bound.IsInclude() {
			return Lower(Exclude(v)), true
		}
		if t.bound.IsInclude() {
			return PointTine(Include(v)), true
		}
		return Tine[T]{}, false

	case t.kind == tineLower && other.kind == tineUpper:
		switch {
		case t.bound.IsInclude() && other.bound.IsInclude():
			return Lower(Exclude(v)), true
		case t.bound.IsInclude() && other.bound.IsExclude():
			return Lower(Include(v)), true
		case t.bound.IsExclude() && other.bound.IsInclude():
			return Lower(Exclude(v)), true
		default:
			return Lower(Exclude(v)), true
		}

	case t.kind == tinePoint && other.kind == tineLower:
		switch {
		case t.bound.IsInclude() && other.bound.IsInclude():
			return Tine[T]{}, false
		case t.bound.IsInclude():
			return PointTine(Include(v)), true
		default:
			return Upper(Exclude(v)), true
		}

	case t.kind == tinePoint && other.kind == tinePoint:
		if t.bound.IsInclude() && other.bound.IsInclude() {
			return Tine[T]{}, false
		}
		if t.bound.IsInclude() {
			return PointTine(Include(v)), true
		}
		if other.bound.IsInclude() {
			return PointTine(Exclude(v)), true
		}
		return Tine[T]{}, false

	case t.kind == tinePoint && other.kind == tineUpper:
		switch {
		case t.bound.IsInclude() && other.bound.IsInclude():
			return Tine[T]{}, false
		case t.bound.IsInclude():
			return PointTine(Include(v)), true
		default:
			return Lower(Exclude(v)), true
		}

	case t.kind == tineUpper && other.kind == tineLower:
		switch {
		case t.bound.IsInclude() && other.bound.IsInclude():
			return Upper(Exclude(v)), true
		case t.bound.IsInclude() && other.bound.IsExclude():
			return Upper(Include(v)), true
		case t.bound.IsExclude() && other.bound.IsInclude():
			return Upper(Exclude(v)), true
		default:
			return Upper(Exclude(v)), true
		}

	case t.kind == tineUpper && other.kind == tinePoint:
		if other.bound.IsInclude() {
			return Upper(Exclude(v)), true
		}
		if t.bound.IsInclude() {
			return PointTine(Include(v)), true
		}
		return Tine[T]{}, false

	default: // Upper, Upper
		if t.bound.IsInclude() && other.bound.IsExclude() {
			return PointTine(Include(v)), true
		}
		return Tine[T]{}, false
	}
}

// Invert returns t with its boundary sense flipped: Lower(Include) becomes
// Upper(Exclude) and vice versa, Point(Include) becomes Point(Exclude) and
// vice versa. Invert panics if t carries an Infinite bound; callers never
// need to invert the tree's outermost infinities directly.
func (t Tine[T]) Invert() Tine[T] {
	if t.bound.IsInfinite() {
		panic("interval: Invert: cannot invert an infinite Tine")
	}
	v, _ := t.Value()
	switch t.kind {
	case tineLower:
		return Upper(t.bound.invertKind().withValue(v))
	case tineUpper:
		return Lower(t.bound.invertKind().withValue(v))
	default:
		return PointTine(t.bound.invertKind().withValue(v))
	}
}

// withValue returns a copy of b with its stored value replaced; used only
// by Invert, where invertKind already flipped the tag and we want to
// reattach the original point rather than re-deriving it.
func (b Bound[T]) withValue(v T) Bound[T] {
	b.value = v
	return b
}
