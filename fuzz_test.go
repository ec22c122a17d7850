package interval_test

import (
	"testing"

	interval "github.com/skysch/tineset"
)

// fromMask builds a TineSet of up to 8 disjoint closed blocks over [0,32):
// bit i of mask selects the block [4i, 4i+3].
func fromMask(mask uint8) interval.TineSet[int] {
	ts := interval.NewTineSet[int](cmpInt)
	for i := 0; i < 8; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		lo := 4 * i
		ts = ts.UnionInPlace(rawClosed(lo, lo+3))
	}
	return ts
}

func equalSets(a, b interval.TineSet[int]) bool {
	ga, gb := collect(a), collect(b)
	if len(ga) != len(gb) {
		return false
	}
	for i := range ga {
		if ga[i] != gb[i] {
			return false
		}
	}
	return true
}

// containsViaIntervals checks membership the slow way, by walking every
// emitted interval, as the independent reference the fast Contains path is
// checked against.
func containsViaIntervals(ts interval.TineSet[int], p int) bool {
	it := ts.Iterator()
	for {
		iv, ok := it.Next()
		if !ok {
			return false
		}
		if iv.Contains(p, cmpInt) {
			return true
		}
	}
}

func FuzzAlgebraicLaws(f *testing.F) {
	f.Add(uint8(0), uint8(0), uint8(0))
	f.Add(uint8(0b10101010), uint8(0b01010101), uint8(0b11110000))
	f.Add(uint8(0xFF), uint8(0xFF), uint8(0))
	f.Add(uint8(0b00110011), uint8(0b00011000), uint8(0b10000001))

	f.Fuzz(func(t *testing.T, maskA, maskB, maskC uint8) {
		a := fromMask(maskA)
		b := fromMask(maskB)
		c := fromMask(maskC)
		empty := interval.NewTineSet[int](cmpInt)
		full := interval.FromRawInterval(interval.FullInterval[int](), cmpInt)

		// 1. Idempotence.
		if !equalSets(a.Union(a), a) {
			t.Fatalf("A ∪ A != A for mask %08b: %v", maskA, collect(a))
		}
		if !equalSets(a.Intersect(a), a) {
			t.Fatalf("A ∩ A != A for mask %08b: %v", maskA, collect(a))
		}

		// 2. Commutativity.
		if !equalSets(a.Union(b), b.Union(a)) {
			t.Fatalf("A ∪ B != B ∪ A for masks %08b,%08b", maskA, maskB)
		}
		if !equalSets(a.Intersect(b), b.Intersect(a)) {
			t.Fatalf("A ∩ B != B ∩ A for masks %08b,%08b", maskA, maskB)
		}

		// 3. Associativity.
		if !equalSets(a.Union(b).Union(c), a.Union(b.Union(c))) {
			t.Fatalf("(A ∪ B) ∪ C != A ∪ (B ∪ C) for masks %08b,%08b,%08b", maskA, maskB, maskC)
		}
		if !equalSets(a.Intersect(b).Intersect(c), a.Intersect(b.Intersect(c))) {
			t.Fatalf("(A ∩ B) ∩ C != A ∩ (B ∩ C) for masks %08b,%08b,%08b", maskA, maskB, maskC)
		}

		// 4. Distributivity.
		lhs := a.Intersect(b.Union(c))
		rhs := a.Intersect(b).Union(a.Intersect(c))
		if !equalSets(lhs, rhs) {
			t.Fatalf("A ∩ (B ∪ C) != (A ∩ B) ∪ (A ∩ C) for masks %08b,%08b,%08b", maskA, maskB, maskC)
		}

		// 5. De Morgan.
		if !equalSets(a.Union(b).Complement(), a.Complement().Intersect(b.Complement())) {
			t.Fatalf("¬(A ∪ B) != ¬A ∩ ¬B for masks %08b,%08b", maskA, maskB)
		}
		if !equalSets(a.Intersect(b).Complement(), a.Complement().Union(b.Complement())) {
			t.Fatalf("¬(A ∩ B) != ¬A ∪ ¬B for masks %08b,%08b", maskA, maskB)
		}

		// 6. Double complement.
		if !equalSets(a.Complement().Complement(), a) {
			t.Fatalf("¬¬A != A for mask %08b: %v", maskA, collect(a))
		}

		// 7. Identity and annihilator.
		if !equalSets(a.Union(empty), a) {
			t.Fatalf("A ∪ ∅ != A for mask %08b", maskA)
		}
		if !equalSets(a.Intersect(full), a) {
			t.Fatalf("A ∩ U != A for mask %08b", maskA)
		}
		if !equalSets(a.Union(full), full) {
			t.Fatalf("A ∪ U != U for mask %08b", maskA)
		}
		if !a.Intersect(empty).IsEmpty() {
			t.Fatalf("A ∩ ∅ != ∅ for mask %08b", maskA)
		}

		// 8. Membership consistency.
		for p := -2; p < 34; p++ {
			if got, want := a.Contains(p), containsViaIntervals(a, p); got != want {
				t.Fatalf("Contains(%d) = %v, want %v (mask %08b)", p, got, want, maskA)
			}
		}

		// 9. Round-trip.
		rebuilt := interval.NewTineSet[int](cmpInt)
		it := a.Iterator()
		for {
			iv, ok := it.Next()
			if !ok {
				break
			}
			rebuilt = rebuilt.UnionInPlace(iv)
		}
		if !equalSets(rebuilt, a) {
			t.Fatalf("round-trip through Iterator changed the set for mask %08b: %v vs %v", maskA, collect(rebuilt), collect(a))
		}

		// 10. Canonicality: no interval the iterator emits is empty, and no
		// two consecutive intervals overlap.
		prev, hasPrev := interval.RawInterval[int]{}, false
		it = a.Iterator()
		for {
			iv, ok := it.Next()
			if !ok {
				break
			}
			if iv.IsEmpty() {
				t.Fatalf("iterator emitted an empty interval for mask %08b", maskA)
			}
			if hasPrev && !prev.Intersect(iv, cmpInt).IsEmpty() {
				t.Fatalf("iterator emitted overlapping intervals %v, %v for mask %08b", prev, iv, maskA)
			}
			prev, hasPrev = iv, true
		}
	})
}
