package interval_test

import (
	"testing"

	interval "github.com/skysch/tineset"
)

func cmpInt(a, b int) int { return a - b }

func rawClosed(lo, hi int) interval.RawInterval[int] {
	return interval.New(interval.Include(lo), interval.Include(hi), cmpInt)
}

func rawOpen(lo, hi int) interval.RawInterval[int] {
	return interval.New(interval.Exclude(lo), interval.Exclude(hi), cmpInt)
}

func rawRightOpen(lo, hi int) interval.RawInterval[int] {
	return interval.New(interval.Include(lo), interval.Exclude(hi), cmpInt)
}

func rawLeftOpen(lo, hi int) interval.RawInterval[int] {
	return interval.New(interval.Exclude(lo), interval.Include(hi), cmpInt)
}

func rawUpTo(hi int) interval.RawInterval[int] {
	return interval.New(interval.Infinite[int](), interval.Exclude(hi), cmpInt)
}

func rawUpFrom(lo int) interval.RawInterval[int] {
	return interval.New(interval.Exclude(lo), interval.Infinite[int](), cmpInt)
}

// collect walks ts with its forward Iterator and renders every interval.
func collect(ts interval.TineSet[int]) []string {
	var out []string
	it := ts.Iterator()
	for {
		iv, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, iv.String())
	}
}

func collectReverse(ts interval.TineSet[int]) []string {
	var out []string
	it := ts.ReverseIterator()
	for {
		iv, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, iv.String())
	}
}

func assertIntervals(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v intervals, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("interval %d: got %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

// TestBoundaryScenarios checks every literal worked example the algebra's
// design notes call out, over plain ints.
func TestBoundaryScenarios(t *testing.T) {
	t.Run("S1", func(t *testing.T) {
		a := interval.FromRawInterval(rawClosed(0, 10), cmpInt)
		b := interval.FromRawInterval(rawOpen(5, 15), cmpInt)

		assertIntervals(t, collect(a.Union(b)), "[0, 15)")
		assertIntervals(t, collect(a.Intersect(b)), "(5, 10]")
		assertIntervals(t, collect(a.Minus(b)), "[0, 5]")
		assertIntervals(t, collect(a.Complement()), "(-inf, 0)", "(10, +inf)")
	})

	t.Run("S2", func(t *testing.T) {
		a := interval.FromRawIntervals(cmpInt, rawClosed(0, 5), rawClosed(10, 15))
		b := interval.FromRawInterval(rawClosed(5, 10), cmpInt)

		assertIntervals(t, collect(a.Union(b)), "[0, 15]")
		assertIntervals(t, collect(a.Intersect(b)), "{5}", "{10}")
		assertIntervals(t, collect(a.Minus(b)), "[0, 5)", "(10, 15]")
	})

	t.Run("S3", func(t *testing.T) {
		a := interval.FromRawInterval(interval.PointInterval(3), cmpInt)
		b := interval.FromRawInterval(rawOpen(2, 4), cmpInt)

		assertIntervals(t, collect(a.Union(b)), "(2, 4)")
		assertIntervals(t, collect(a.Intersect(b)), "{3}")
		assertIntervals(t, collect(b.Minus(a)), "(2, 3)", "(3, 4)")
	})

	t.Run("S4", func(t *testing.T) {
		a := interval.FromRawInterval(rawUpTo(0), cmpInt)
		b := interval.FromRawInterval(rawUpFrom(0), cmpInt)

		union := a.Union(b)
		assertIntervals(t, collect(union), "(-inf, 0)", "(0, +inf)")
		assertIntervals(t, collect(union.Complement()), "{0}")
	})

	t.Run("S5", func(t *testing.T) {
		a := interval.FromRawIntervals(cmpInt, rawRightOpen(0, 1), rawClosed(1, 2))
		assertIntervals(t, collect(a), "[0, 2]")
	})

	t.Run("S6", func(t *testing.T) {
		a := interval.FromRawIntervals(cmpInt, rawClosed(0, 5), rawOpen(10, 20), interval.PointInterval(30))
		if got := collect(a.Minus(a)); len(got) != 0 {
			t.Fatalf("A ∖ A should be empty, got %v", got)
		}
		if !a.Minus(a).IsEmpty() {
			t.Fatalf("A ∖ A should report IsEmpty")
		}
	})
}

func TestContains(t *testing.T) {
	ts := interval.FromRawIntervals(cmpInt, rawClosed(0, 5), rawOpen(10, 20), interval.PointInterval(30))

	cases := []struct {
		point int
		want  bool
	}{
		{-1, false}, {0, true}, {3, true}, {5, true}, {6, false},
		{10, false}, {11, true}, {19, true}, {20, false},
		{30, true}, {31, false},
	}
	for _, c := range cases {
		if got := ts.Contains(c.point); got != c.want {
			t.Errorf("Contains(%d) = %v, want %v", c.point, got, c.want)
		}
	}
}

func TestUnboundedContains(t *testing.T) {
	below := interval.FromRawInterval(rawUpTo(0), cmpInt)
	if !below.Contains(-1000000) {
		t.Error("(-inf, 0) should contain a very negative point")
	}
	if below.Contains(0) {
		t.Error("(-inf, 0) should not contain its open upper edge")
	}

	above := interval.FromRawInterval(rawUpFrom(0), cmpInt)
	if !above.Contains(1000000) {
		t.Error("(0, +inf) should contain a very positive point")
	}
	if above.Contains(0) {
		t.Error("(0, +inf) should not contain its open lower edge")
	}
}

func TestEncloseAndClosure(t *testing.T) {
	empty := interval.NewTineSet[int](cmpInt)
	if got := empty.Enclose(); !got.IsEmpty() {
		t.Errorf("Enclose of empty set should be Empty, got %v", got)
	}

	single := interval.FromRawInterval(interval.PointInterval(7), cmpInt)
	if got := single.Enclose().String(); got != "{7}" {
		t.Errorf("Enclose of a singleton should be the point itself, got %v", got)
	}

	spread := interval.FromRawIntervals(cmpInt, rawOpen(0, 5), rawClosed(10, 15))
	if got := spread.Enclose().String(); got != "(0, 15]" {
		t.Errorf("Enclose should span from the first tine to the last, got %v", got)
	}
	if got := spread.Closure().String(); got != "[0, 15]" {
		t.Errorf("Closure should include both edges, got %v", got)
	}
}

func TestComplementInvolution(t *testing.T) {
	ts := interval.FromRawIntervals(cmpInt, rawClosed(0, 5), rawOpen(10, 20), interval.PointInterval(30))
	twice := ts.Complement().Complement()
	if got, want := collect(twice), collect(ts); len(got) != len(want) {
		t.Fatalf("¬¬A should equal A, got %v want %v", got, want)
	} else {
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("¬¬A should equal A, got %v want %v", got, want)
			}
		}
	}
}

func TestUnionIdempotentAndIdentity(t *testing.T) {
	a := interval.FromRawIntervals(cmpInt, rawClosed(0, 5), rawOpen(10, 20))
	empty := interval.NewTineSet[int](cmpInt)
	full := interval.FromRawInterval(interval.FullInterval[int](), cmpInt)

	assertIntervals(t, collect(a.Union(a)), collect(a)...)
	assertIntervals(t, collect(a.Union(empty)), collect(a)...)
	assertIntervals(t, collect(a.Intersect(full)), collect(a)...)
	assertIntervals(t, collect(a.Union(full)), "(-inf, +inf)")
	if !a.Intersect(empty).IsEmpty() {
		t.Error("A ∩ ∅ should be empty")
	}
}

func TestIntersectAcrossMultipleIntervals(t *testing.T) {
	// self = [0,2] ∪ [4,20], other = [3,10]; a two-pointer merge that drops
	// an interval too early would miss [4,10] entirely.
	self := interval.FromRawIntervals(cmpInt, rawClosed(0, 2), rawClosed(4, 20))
	other := interval.FromRawInterval(rawClosed(3, 10), cmpInt)
	assertIntervals(t, collect(self.Intersect(other)), "[4, 10]")
}

func TestIteratorAndReverseIteratorAgree(t *testing.T) {
	ts := interval.FromRawIntervals(cmpInt, rawClosed(0, 5), rawOpen(10, 20), interval.PointInterval(30))
	forward := collect(ts)
	backward := collectReverse(ts)
	if len(forward) != len(backward) {
		t.Fatalf("forward/reverse iterators disagree on count: %v vs %v", forward, backward)
	}
	for i, iv := range forward {
		if backward[len(backward)-1-i] != iv {
			t.Fatalf("reverse iterator out of order: forward=%v backward=%v", forward, backward)
		}
	}
}

// TestCanonicality checks spec.md §8's canonicality law: no adjacent tine
// collapse is left un-canonicalized and no empty sub-interval is ever
// emitted by the iterator.
func TestCanonicality(t *testing.T) {
	a := interval.FromRawIntervals(cmpInt, rawRightOpen(0, 5), rawClosed(5, 10))
	assertIntervals(t, collect(a), "[0, 10]")

	b := interval.FromRawIntervals(cmpInt, rawClosed(0, 5), rawClosed(5, 10))
	assertIntervals(t, collect(b), "[0, 10]")

	// Union of two touching open intervals punctures rather than merging.
	c := interval.FromRawIntervals(cmpInt, rawOpen(0, 5), rawOpen(5, 10))
	assertIntervals(t, collect(c), "(0, 5)", "(5, 10)")
}

func TestFromRawIntervalsOrderIndependent(t *testing.T) {
	forward := interval.FromRawIntervals(cmpInt, rawClosed(0, 5), rawClosed(10, 15), interval.PointInterval(20))
	backward := interval.FromRawIntervals(cmpInt, interval.PointInterval(20), rawClosed(10, 15), rawClosed(0, 5))
	assertIntervals(t, collect(forward), collect(backward)...)
}
