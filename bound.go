package interval

import "fmt"

// boundKind tags the three shapes a Bound can take.
type boundKind uint8

const (
	boundInclude boundKind = iota
	boundExclude
	boundInfinite
)

// Bound describes one endpoint of an interval: an included point, an
// excluded point, or an infinity carrying no value.
type Bound[T any] struct {
	kind  boundKind
	value T
}

// Include returns a Bound representing a point that belongs to the interval.
func Include[T any](v T) Bound[T] {
	return Bound[T]{kind: boundInclude, value: v}
}

// Exclude returns a Bound representing a point adjacent to, but not
// belonging to, the interval.
func Exclude[T any](v T) Bound[T] {
	return Bound[T]{kind: boundExclude, value: v}
}

// Infinite returns a Bound with no value, representing an unbounded side.
func Infinite[T any]() Bound[T] {
	return Bound[T]{kind: boundInfinite}
}

// IsInclude reports whether b is an included point.
func (b Bound[T]) IsInclude() bool { return b.kind == boundInclude }

// IsExclude reports whether b is an excluded point.
func (b Bound[T]) IsExclude() bool { return b.kind == boundExclude }

// IsInfinite reports whether b carries no value.
func (b Bound[T]) IsInfinite() bool { return b.kind == boundInfinite }

// Value returns the bound's point and true, or the zero value and false
// if b is Infinite.
func (b Bound[T]) Value() (T, bool) {
	if b.kind == boundInfinite {
		var zero T
		return zero, false
	}
	return b.value, true
}

// Map applies f to the bound's value, leaving Infinite unchanged.
func (b Bound[T]) Map(f func(T) T) Bound[T] {
	if b.kind == boundInfinite {
		return b
	}
	b.value = f(b.value)
	return b
}

// invertKind flips Include/Exclude; Infinite is returned unchanged.
func (b Bound[T]) invertKind() Bound[T] {
	switch b.kind {
	case boundInclude:
		b.kind = boundExclude
	case boundExclude:
		b.kind = boundInclude
	}
	return b
}

func (b Bound[T]) String() string {
	switch b.kind {
	case boundInclude:
		return fmt.Sprintf("Include(%v)", b.value)
	case boundExclude:
		return fmt.Sprintf("Exclude(%v)", b.value)
	default:
		return "Infinite"
	}
}

// compareBound compares two finite bounds by value only; callers must
// ensure neither side is Infinite.
func compareBound[T any](a, b Bound[T], cmp func(T, T) int) int {
	return cmp(a.value, b.value)
}
