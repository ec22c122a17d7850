// Package interval implements a canonical algebra of one-dimensional
// intervals and their unions.
//
// A RawInterval is a single interval in one of ten canonical shapes —
// Empty, Point, Open, LeftOpen, RightOpen, Closed, UpTo, UpFrom, To, From,
// Full — built from a pair of Bounds (Include, Exclude, or Infinite) via
// New, which always normalizes to the unique canonical form.
//
// A TineSet is a possibly disjoint union of RawIntervals, represented
// internally not as a list of intervals but as an ordered set of Tines:
// oriented markers (Lower, Upper, Point) at every boundary coordinate. This
// representation is what makes Union, Intersect, Minus, and Complement
// cheap and compositional — UnionInPlace and MinusInPlace only have to
// reconcile the markers at the coordinates a query touches, never re-walk
// the whole set.
//
//  NewTineSet()       O(1)
//  FromRawInterval()  O(log n)
//  Contains()         O(log n)
//  UnionInPlace()     O(log n)
//  IntersectInPlace() O(n), via a full Intersect walk
//  MinusInPlace()     O(log n)
//  Complement()       O(n)
//  Iterator()         O(n) total over a full walk
//
// The ordered set of Tines is backed by a treap, persistent in the usual
// sense: UnionInPlace and MinusInPlace return a TineSet sharing untouched
// nodes with its predecessor, and IntersectInPlace builds a fresh one, so a
// TineSet value is safe to keep around and reuse after deriving a new one
// from it.
//
// The representation is not specific to numeric ranges: any T with an
// explicit ordering — IP addresses, timestamps, version numbers — works the
// same way, trading a covering-lookup structure for a set-algebra one.
package interval
