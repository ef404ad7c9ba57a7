package zeck

import (
	"testing"
)

// AssertValidZeckendorf verifies the full Zeckendorf contract on a
// representation: exact sum, strictly descending indices, ranks ≥ 2, and no
// two indices adjacent.
func AssertValidZeckendorf(t *testing.T, rep *Representation) {
	t.Helper()

	if rep == nil {
		t.Fatalf("nil representation")
	}
	if got := rep.Sum(); got.Cmp(rep.N) != 0 {
		t.Errorf("sum mismatch for %s: values reconstruct to %s", rep.N, got)
	}
	if rep.Count != len(rep.Indices) || rep.Count != len(rep.Values) {
		t.Errorf("count %d inconsistent with %d indices, %d values",
			rep.Count, len(rep.Indices), len(rep.Values))
	}
	for i, idx := range rep.Indices {
		if idx < 2 {
			t.Errorf("index %d below Zeckendorf rank floor", idx)
		}
		if i > 0 {
			gap := rep.Indices[i-1] - idx
			if gap < 1 {
				t.Errorf("indices not strictly descending: %v", rep.Indices)
			}
			if gap == 1 {
				t.Errorf("adjacent indices %d,%d in %v", rep.Indices[i-1], idx, rep.Indices)
			}
		}
	}
}

// AssertValidLucas verifies the Lucas decomposition contract: exact sum,
// distinct indices, and counts consistent. Adjacency is deliberately not
// checked; the Lucas policy does not promise it.
func AssertValidLucas(t *testing.T, rep *Representation) {
	t.Helper()

	if rep == nil {
		t.Fatalf("nil representation")
	}
	if got := rep.Sum(); got.Cmp(rep.N) != 0 {
		t.Errorf("sum mismatch for %s: values reconstruct to %s", rep.N, got)
	}
	if rep.Count != len(rep.Indices) || rep.Count != len(rep.Values) {
		t.Errorf("count %d inconsistent with %d indices, %d values",
			rep.Count, len(rep.Indices), len(rep.Values))
	}
	seen := make(map[int]bool, len(rep.Indices))
	for _, idx := range rep.Indices {
		if idx < 0 {
			t.Errorf("negative index %d in %v", idx, rep.Indices)
		}
		if seen[idx] {
			t.Errorf("repeated index %d in %v", idx, rep.Indices)
		}
		seen[idx] = true
	}
}

// AssertNonDecreasing verifies a cumulative series never steps down.
func AssertNonDecreasing(t *testing.T, series []int64) {
	t.Helper()

	for i := 1; i < len(series); i++ {
		if series[i] < series[i-1] {
			t.Errorf("series decreases at %d: %d -> %d", i, series[i-1], series[i])
			return
		}
	}
}

// AssertBoundaryEquilibria verifies the theorem's guaranteed direction
// against a scan result: every Lucas boundary L(m)-1 within [0, n] must
// appear as an equilibrium point.
func AssertBoundaryEquilibria(t *testing.T, res *ScanResult, n int) {
	t.Helper()

	points := make(map[int]int, len(res.Points))
	for _, p := range res.Points {
		points[p.N] = p.LucasIndex
	}

	c, err := newCounter(int64(n) + 1)
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	check := func(value int64, m int) {
		b := int(value) - 1
		if b < 0 || b > n {
			return
		}
		if got, ok := points[b]; !ok {
			t.Errorf("Lucas boundary n=%d (L(%d)=%d) missing from points", b, m, value)
		} else if got != m {
			t.Errorf("boundary n=%d annotated L(%d), want L(%d)", b, got, m)
		}
	}
	check(1, 1)
	check(2, 0)
	for i := 2; i < len(c.luc); i++ {
		check(c.luc[i], i)
	}
}
