package interval

import (
	"io"
	"strings"
)

// TineSet is a possibly noncontiguous union of RawIntervals over T,
// represented internally as a canonical ordered collection of Tines. It acts
// like a number line with markers for every interval boundary in a
// (possibly disjoint) union of intervals.
type TineSet[T any] struct {
	tree tineTree[T]
}

// NewTineSet constructs an empty TineSet over a domain ordered by cmp.
func NewTineSet[T any](cmp func(T, T) int) TineSet[T] {
	return TineSet[T]{tree: newTineTree[T](cmp)}
}

// FromRawInterval constructs a TineSet containing exactly the points of iv.
func FromRawInterval[T any](iv RawInterval[T], cmp func(T, T) int) TineSet[T] {
	return NewTineSet[T](cmp).UnionInPlace(iv)
}

// FromRawIntervals constructs a TineSet as the union of every interval in
// ivs, in the order given.
func FromRawIntervals[T any](cmp func(T, T) int, ivs ...RawInterval[T]) TineSet[T] {
	ts := NewTineSet[T](cmp)
	for _, iv := range ivs {
		ts = ts.UnionInPlace(iv)
	}
	return ts
}

// IsEmpty reports whether ts represents the empty set.
func (ts TineSet[T]) IsEmpty() bool { return ts.tree.isEmpty() }

// Contains reports whether point lies in any interval of ts. It runs in
// O(log n): a point query needs only the Tine at point, or failing that,
// the nearest Tine below it.
func (ts TineSet[T]) Contains(point T) bool {
	key := PointTine(Include(point))
	if t, ok := ts.tree.find(key); ok {
		return t.Bound().IsInclude()
	}
	left, _, _, _ := ts.tree.split(key)
	pred, ok := left.lastTine()
	if !ok {
		return false
	}
	return pred.IsLowerBound()
}

// LowerBound returns the Bound of the first Tine in ts, or false if ts is
// empty.
func (ts TineSet[T]) LowerBound() (Bound[T], bool) {
	t, ok := ts.tree.firstTine()
	if !ok {
		return Bound[T]{}, false
	}
	return t.Bound(), true
}

// UpperBound returns the Bound of the last Tine in ts, or false if ts is
// empty.
func (ts TineSet[T]) UpperBound() (Bound[T], bool) {
	t, ok := ts.tree.lastTine()
	if !ok {
		return Bound[T]{}, false
	}
	return t.Bound(), true
}

// Enclose returns the smallest RawInterval containing every point of ts.
func (ts TineSet[T]) Enclose() RawInterval[T] {
	if ts.tree.isEmpty() {
		return EmptyInterval[T]()
	}
	if ts.tree.isSingleton() {
		t, _ := ts.tree.firstTine()
		v, _ := t.Value()
		return PointInterval(v)
	}
	lb, _ := ts.tree.firstTine()
	ub, _ := ts.tree.lastTine()
	return New(lb.Bound(), ub.Bound(), ts.tree.cmp)
}

// Closure returns the smallest closed RawInterval containing every point of
// ts.
func (ts TineSet[T]) Closure() RawInterval[T] {
	return ts.Enclose().Closure()
}

// FprintBST writes a horizontal diagram of ts's backing treap to w, for
// debugging only: it exposes the raw boundary tree, not the intervals it
// encodes.
func (ts TineSet[T]) FprintBST(w io.Writer) error {
	return ts.tree.fprintBST(w)
}

// String renders ts's backing treap the same way FprintBST does, as a
// debugging aid.
func (ts TineSet[T]) String() string {
	var b strings.Builder
	_ = ts.FprintBST(&b)
	return b.String()
}

// Complement returns the TineSet containing every point not in ts.
func (ts TineSet[T]) Complement() TineSet[T] {
	cmp := ts.tree.cmp
	if ts.tree.isEmpty() {
		return FromRawInterval(FullInterval[T](), cmp)
	}

	tines := ts.tree.tines()
	out := NewTineSet[T](cmp)

	if len(tines) == 1 {
		out.tree = out.tree.insert(Lower[T](Infinite[T]()))
		out.tree = out.tree.insert(tines[0].Invert())
		out.tree = out.tree.insert(Upper[T](Infinite[T]()))
		return out
	}

	first := tines[0]
	if !first.IsLowerInfinite() {
		out.tree = out.tree.insert(Lower[T](Infinite[T]()))
		out.tree = out.tree.insert(first.Invert())
	}

	last := tines[len(tines)-1]
	if !last.IsUpperInfinite() {
		out.tree = out.tree.insert(Upper[T](Infinite[T]()))
		out.tree = out.tree.insert(last.Invert())
	}

	for _, t := range tines[1 : len(tines)-1] {
		out.tree = out.tree.insert(t.Invert())
	}

	return out
}

// Union returns the TineSet containing every point in either ts or other.
func (ts TineSet[T]) Union(other TineSet[T]) TineSet[T] {
	result := ts
	it := other.Iterator()
	for {
		iv, ok := it.Next()
		if !ok {
			return result
		}
		result = result.UnionInPlace(iv)
	}
}

// Minus returns the TineSet containing every point in ts but not other.
func (ts TineSet[T]) Minus(other TineSet[T]) TineSet[T] {
	result := ts
	it := other.Iterator()
	for {
		iv, ok := it.Next()
		if !ok {
			return result
		}
		result = result.MinusInPlace(iv)
	}
}

// Intersect returns the TineSet containing every point in both ts and
// other, merged with a two-pointer walk over both interval streams: the
// stream whose current interval ends first always advances, so neither
// stream's interval is dropped before every candidate overlap with it has
// been tried.
func (ts TineSet[T]) Intersect(other TineSet[T]) TineSet[T] {
	cmp := ts.tree.cmp
	result := NewTineSet[T](cmp)

	selfIt, otherIt := ts.Iterator(), other.Iterator()
	selfIv, selfOK := selfIt.Next()
	otherIv, otherOK := otherIt.Next()

	for selfOK && otherOK {
		i := selfIv.Intersect(otherIv, cmp)
		if !i.IsEmpty() {
			result = result.UnionInPlace(i)
		}
		if compareRawUpper(selfIv, otherIv, cmp) <= 0 {
			selfIv, selfOK = selfIt.Next()
		} else {
			otherIv, otherOK = otherIt.Next()
		}
	}
	return result
}

// compareRawUpper orders two RawIntervals by their upper Bound, treating
// Infinite as greater than every finite value.
func compareRawUpper[T any](a, b RawInterval[T], cmp func(T, T) int) int {
	ab, bb := a.upperBound(), b.upperBound()
	switch {
	case ab.IsInfinite() && bb.IsInfinite():
		return 0
	case ab.IsInfinite():
		return 1
	case bb.IsInfinite():
		return -1
	}
	av, _ := ab.Value()
	bv, _ := bb.Value()
	return cmp(av, bv)
}

////////////////////////////////////////////////////////////////////////////
// In-place primitives
////////////////////////////////////////////////////////////////////////////

// UnionInPlace returns ts with iv folded in by union. Full is not
// special-cased: its Lower(Infinite)/Upper(Infinite) edges flow through the
// same split-and-merge path as any other two-sided interval, discarding
// everything ts used to contain in between.
func (ts TineSet[T]) UnionInPlace(iv RawInterval[T]) TineSet[T] {
	split := splitRawInterval[T](iv)
	switch split.Kind {
	case SplitZero:
		return ts
	case SplitOne:
		return ts.unionPointInterval(split.First)
	default:
		return ts.unionProperInterval(split.First, split.Second)
	}
}

// IntersectInPlace returns ts intersected with iv.
func (ts TineSet[T]) IntersectInPlace(iv RawInterval[T]) TineSet[T] {
	return ts.Intersect(FromRawInterval(iv, ts.tree.cmp))
}

// MinusInPlace returns ts with every point of iv removed.
func (ts TineSet[T]) MinusInPlace(iv RawInterval[T]) TineSet[T] {
	if ts.tree.isEmpty() || iv.IsEmpty() {
		return ts
	}
	if iv.IsFull() {
		return NewTineSet[T](ts.tree.cmp)
	}

	split := splitRawInterval[T](iv)
	switch split.Kind {
	case SplitZero:
		return ts
	case SplitOne:
		return ts.minusPointInterval(split.First)
	default:
		return ts.minusProperInterval(split.First, split.Second)
	}
}

// unionPointInterval folds a single isolated point into ts. p is always
// Point(Include); the exterior split around its coordinate is a single
// three-way split, since a point has only one boundary coordinate.
func (ts TineSet[T]) unionPointInterval(p Tine[T]) TineSet[T] {
	v, _ := p.Value()
	left, mid, right, ok := ts.tree.split(p)

	if !ok {
		if ts.Contains(v) {
			return ts
		}
		ts.tree = ts.tree.insert(p)
		return ts
	}

	midTine, _ := mid.firstTine()
	merged, mok := midTine.Union(p)
	if mok {
		right = right.insert(merged)
	}
	ts.tree = joinTrees(left, right)
	return ts
}

// minusPointInterval removes a single point from ts.
func (ts TineSet[T]) minusPointInterval(p Tine[T]) TineSet[T] {
	v, _ := p.Value()
	left, mid, right, ok := ts.tree.split(p)

	if !ok {
		if !ts.Contains(v) {
			return ts
		}
		ts.tree = ts.tree.insert(PointTine(Exclude(v)))
		return ts
	}

	midTine, _ := mid.firstTine()
	merged, mok := midTine.Minus(p)
	if mok {
		right = right.insert(merged)
	}
	ts.tree = joinTrees(left, right)
	return ts
}

// unionProperInterval folds a two-sided interval, given as its Lower and
// Upper Tine, into ts. Everything strictly between L and U is discarded
// outright: the new interval makes that whole span included regardless of
// what boundaries used to sit inside it. Only the two edges need tine
// algebra: each is merged against whatever Tine (if any) already sits at
// that exact coordinate, or, if none does, against ts's implicit coverage
// there (found with Contains) to decide whether the new edge is swallowed
// by an already-included neighborhood or inserted as a fresh boundary.
func (ts TineSet[T]) unionProperInterval(L, U Tine[T]) TineSet[T] {
	left, atL, rest, lok := ts.tree.split(L)
	_, atU, right, uok := rest.split(U)

	out := newTineTree[T](ts.tree.cmp)
	if mergedL, ok := mergeExteriorUnion(ts, L, atL, lok); ok {
		out = out.insert(mergedL)
	}
	if mergedU, ok := mergeExteriorUnion(ts, U, atU, uok); ok {
		out = out.insert(mergedU)
	}

	ts.tree = joinTrees(joinTrees(left, out), right)
	return ts
}

// minusProperInterval removes a two-sided interval, given as its Lower and
// Upper Tine, from ts. Everything strictly between L and U is discarded: no
// matter what was there, none of it survives. The two edges are resolved
// the same way as in unionProperInterval, using Tine.Minus and the
// self-minus-other role convention (ts's own edge tine is self, the
// removed interval's tine is other), with Contains as the fallback when ts
// has no explicit boundary at that coordinate.
func (ts TineSet[T]) minusProperInterval(L, U Tine[T]) TineSet[T] {
	left, atL, rest, lok := ts.tree.split(L)
	_, atU, right, uok := rest.split(U)

	out := newTineTree[T](ts.tree.cmp)
	if mergedL, ok := mergeExteriorMinus(ts, L, atL, lok); ok {
		out = out.insert(mergedL)
	}
	if mergedU, ok := mergeExteriorMinus(ts, U, atU, uok); ok {
		out = out.insert(mergedU)
	}

	ts.tree = joinTrees(joinTrees(left, out), right)
	return ts
}

// mergeExteriorUnion resolves one edge of a union's exterior split. edge is
// the incoming Lower or Upper Tine of the interval being unioned in; at is
// the single-node tree at that exact coordinate in ts, if atOK.
//
// An Infinite edge always survives as-is: it can only coincide (atOK) with
// an existing sentinel of the same extremity, in which case re-asserting it
// is a no-op, and Tine.Union has no case for reconciling two Infinite
// bounds since the original algebra never merges tine values at infinity.
func mergeExteriorUnion[T any](ts TineSet[T], edge Tine[T], at tineTree[T], atOK bool) (Tine[T], bool) {
	if edge.Bound().IsInfinite() {
		return edge, true
	}
	if atOK {
		existing, _ := at.firstTine()
		return existing.Union(edge)
	}
	v, _ := edge.Value()
	if ts.Contains(v) {
		return Tine[T]{}, false
	}
	return edge, true
}

// mergeExteriorMinus resolves one edge of a minus's exterior split. edge is
// the incoming Lower or Upper Tine of the interval being subtracted; at is
// the single-node tree at that exact coordinate in ts, if atOK.
//
// An Infinite edge never leaves a tine behind: subtracting a range that
// itself runs to that extremity always erases ts's own sentinel there (if
// any), and there is nothing at infinity itself to flip into a fresh
// boundary when ts had none.
func mergeExteriorMinus[T any](ts TineSet[T], edge Tine[T], at tineTree[T], atOK bool) (Tine[T], bool) {
	if edge.Bound().IsInfinite() {
		return Tine[T]{}, false
	}
	if atOK {
		existing, _ := at.firstTine()
		return existing.Minus(edge)
	}
	v, _ := edge.Value()
	if !ts.Contains(v) {
		return Tine[T]{}, false
	}
	return edge.Invert(), true
}

////////////////////////////////////////////////////////////////////////////
// Streaming iterators
////////////////////////////////////////////////////////////////////////////

// RawIntervalIter yields the intervals of a TineSet one at a time in
// ascending order.
type RawIntervalIter[T any] struct {
	tines        []Tine[T]
	pos          int
	cmp          func(T, T) int
	pendingLower Bound[T]
	hasPending   bool
}

// Iterator returns an ascending iterator over ts's intervals.
func (ts TineSet[T]) Iterator() *RawIntervalIter[T] {
	return &RawIntervalIter[T]{tines: ts.tree.tines(), cmp: ts.tree.cmp}
}

// Next returns the next interval, or false once exhausted.
func (it *RawIntervalIter[T]) Next() (RawInterval[T], bool) {
	for it.pos < len(it.tines) {
		t := it.tines[it.pos]
		it.pos++
		switch {
		case !it.hasPending && t.kind == tineLower:
			it.pendingLower, it.hasPending = t.bound, true

		case !it.hasPending && t.kind == tinePoint && t.bound.IsInclude():
			v, _ := t.Value()
			return PointInterval(v), true

		case it.hasPending && t.kind == tineUpper:
			iv := New(it.pendingLower, t.bound, it.cmp)
			it.hasPending = false
			return iv, true

		case it.hasPending && t.kind == tinePoint && t.bound.IsExclude():
			v, _ := t.Value()
			iv := New(it.pendingLower, Exclude(v), it.cmp)
			it.pendingLower = Exclude(v)
			return iv, true
		}
	}
	return RawInterval[T]{}, false
}

// ReverseRawIntervalIter yields the intervals of a TineSet one at a time in
// descending order.
type ReverseRawIntervalIter[T any] struct {
	tines        []Tine[T]
	pos          int
	cmp          func(T, T) int
	pendingUpper Bound[T]
	hasPending   bool
}

// ReverseIterator returns a descending iterator over ts's intervals.
func (ts TineSet[T]) ReverseIterator() *ReverseRawIntervalIter[T] {
	tines := ts.tree.tines()
	return &ReverseRawIntervalIter[T]{tines: tines, pos: len(tines) - 1, cmp: ts.tree.cmp}
}

// Next returns the next interval walking backward, or false once exhausted.
func (it *ReverseRawIntervalIter[T]) Next() (RawInterval[T], bool) {
	for it.pos >= 0 {
		t := it.tines[it.pos]
		it.pos--
		switch {
		case !it.hasPending && t.kind == tineUpper:
			it.pendingUpper, it.hasPending = t.bound, true

		case !it.hasPending && t.kind == tinePoint && t.bound.IsInclude():
			v, _ := t.Value()
			return PointInterval(v), true

		case it.hasPending && t.kind == tineLower:
			iv := New(t.bound, it.pendingUpper, it.cmp)
			it.hasPending = false
			return iv, true

		case it.hasPending && t.kind == tinePoint && t.bound.IsExclude():
			v, _ := t.Value()
			iv := New(Exclude(v), it.pendingUpper, it.cmp)
			it.pendingUpper = Exclude(v)
			return iv, true
		}
	}
	return RawInterval[T]{}, false
}
