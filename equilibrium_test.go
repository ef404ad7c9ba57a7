package zeck

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestFindEquilibria_SmallRange(t *testing.T) {
	res, err := FindEquilibria(context.Background(), 20)
	if err != nil {
		t.Fatalf("FindEquilibria(20): %v", err)
	}

	wantPoints := []EquilibriumPoint{
		{N: 0, LucasIndex: 1},  // 1 = L(1)
		{N: 1, LucasIndex: 0},  // 2 = L(0)
		{N: 2, LucasIndex: 2},  // 3 = L(2)
		{N: 3, LucasIndex: 3},  // 4 = L(3)
		{N: 6, LucasIndex: 4},  // 7 = L(4)
		{N: 10, LucasIndex: 5}, // 11 = L(5)
		{N: 17, LucasIndex: 6}, // 18 = L(6)
	}
	if len(res.Points) != len(wantPoints) {
		t.Fatalf("got %d points %v, want %d", len(res.Points), res.Points, len(wantPoints))
	}
	for i, p := range wantPoints {
		if res.Points[i] != p {
			t.Errorf("point %d = %+v, want %+v", i, res.Points[i], p)
		}
	}

	wantViolations := []int{5, 8, 9, 16}
	if len(res.Violations) != len(wantViolations) {
		t.Fatalf("got %d violations %v, want %d", len(res.Violations), res.Violations, len(wantViolations))
	}
	for i, n := range wantViolations {
		v := res.Violations[i]
		if v.N != n {
			t.Errorf("violation %d at N=%d, want %d", i, v.N, n)
		}
		if !strings.Contains(v.Reason, "not a Lucas number") {
			t.Errorf("violation %d reason %q: want an S=0 non-boundary reason", i, v.Reason)
		}
	}

	t.Logf("✓ scan(20): %d equilibria, %d interior zeros", len(res.Points), len(res.Violations))
}

func TestFindEquilibria_InteriorZeros(t *testing.T) {
	// Zeros of S whose successor is not a Lucas number, up to 100. These are
	// structural: the greedy counts between consecutive Lucas boundaries
	// telescope exactly, so the partial sums touch zero inside the window.
	res, err := FindEquilibria(context.Background(), 100)
	if err != nil {
		t.Fatal(err)
	}

	want := []int{5, 8, 9, 16, 24, 26, 27, 45, 71, 73, 74}
	if len(res.Violations) != len(want) {
		t.Fatalf("got %d violations, want %d: %v", len(res.Violations), len(want), res.Violations)
	}
	for i, n := range want {
		if res.Violations[i].N != n {
			t.Errorf("violation %d at N=%d, want %d", i, res.Violations[i].N, n)
		}
	}
}

func TestFindEquilibria_BoundariesAlwaysZero(t *testing.T) {
	// The proven direction of the boundary theorem: S(L(m)-1) = 0 for every
	// Lucas boundary in range, and the scanner reports each as a point.
	res, err := FindEquilibria(context.Background(), 10_000)
	if err != nil {
		t.Fatal(err)
	}
	AssertBoundaryEquilibria(t, res, 10_000)

	for _, v := range res.Violations {
		if !strings.Contains(v.Reason, "not a Lucas number") {
			t.Errorf("unexpected boundary violation: %+v", v)
		}
	}
	if len(res.Violations) != 31 {
		t.Errorf("got %d interior zeros up to 10000, want 31", len(res.Violations))
	}
}

func TestFindEquilibria_PointsHaveSingletonSuccessor(t *testing.T) {
	res, err := FindEquilibria(context.Background(), 5000)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range res.Points {
		rep, err := DecomposeLucas(bigInt(p.N + 1))
		if err != nil {
			t.Fatal(err)
		}
		if rep.Count != 1 {
			t.Errorf("point N=%d: DecomposeLucas(%d).Count = %d, want 1",
				p.N, p.N+1, rep.Count)
		}
		if rep.Indices[0] != p.LucasIndex {
			t.Errorf("point N=%d: successor index %d, scanner says %d",
				p.N, rep.Indices[0], p.LucasIndex)
		}
	}
}

func TestFindEquilibria_ShardsAgree(t *testing.T) {
	seq, err := FindEquilibria(context.Background(), 3000)
	if err != nil {
		t.Fatal(err)
	}
	par, err := FindEquilibria(context.Background(), 3000, WithShards(8))
	if err != nil {
		t.Fatal(err)
	}
	if len(seq.Points) != len(par.Points) || len(seq.Violations) != len(par.Violations) {
		t.Fatalf("sharded scan diverges: %d/%d points, %d/%d violations",
			len(seq.Points), len(par.Points), len(seq.Violations), len(par.Violations))
	}
	for i := range seq.Points {
		if seq.Points[i] != par.Points[i] {
			t.Errorf("point %d: %+v vs %+v", i, seq.Points[i], par.Points[i])
		}
	}
}

func TestFindEquilibria_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FindEquilibria(ctx, 1_000_000); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled scan: want context.Canceled, got %v", err)
	}
}

func TestFindEquilibria_NegativeBound(t *testing.T) {
	if _, err := FindEquilibria(context.Background(), -3); !errors.Is(err, ErrNegativeIndex) {
		t.Errorf("want ErrNegativeIndex, got %v", err)
	}
}

// recordingSink captures everything stored, optionally failing every call.
type recordingSink struct {
	points     []EquilibriumPoint
	signature  string
	exampleIDs []string
	fail       bool
}

func (s *recordingSink) StoreEquilibrium(p EquilibriumPoint) error {
	s.points = append(s.points, p)
	if s.fail {
		return errors.New("sink unavailable")
	}
	return nil
}

func (s *recordingSink) StorePatternSignature(signature string, ids []string) error {
	s.signature = signature
	s.exampleIDs = ids
	if s.fail {
		return errors.New("sink unavailable")
	}
	return nil
}

func TestFindEquilibria_SinkObservesPoints(t *testing.T) {
	sink := &recordingSink{}
	res, err := FindEquilibria(context.Background(), 20, WithSink(sink))
	if err != nil {
		t.Fatal(err)
	}

	if len(sink.points) != len(res.Points) {
		t.Fatalf("sink saw %d points, result has %d", len(sink.points), len(res.Points))
	}
	for i := range res.Points {
		if sink.points[i] != res.Points[i] {
			t.Errorf("sink point %d = %+v, result %+v", i, sink.points[i], res.Points[i])
		}
	}
	if sink.signature != "lucas-boundary-equilibria" {
		t.Errorf("signature = %q", sink.signature)
	}
	wantIDs := []string{"0", "1", "2", "3", "6", "10", "17"}
	if len(sink.exampleIDs) != len(wantIDs) {
		t.Fatalf("exampleIDs = %v, want %v", sink.exampleIDs, wantIDs)
	}
	for i, id := range wantIDs {
		if sink.exampleIDs[i] != id {
			t.Errorf("exampleIDs[%d] = %q, want %q", i, sink.exampleIDs[i], id)
		}
	}
}

func TestFindEquilibria_FailingSinkIsIgnored(t *testing.T) {
	plain, err := FindEquilibria(context.Background(), 100)
	if err != nil {
		t.Fatal(err)
	}
	withFailing, err := FindEquilibria(context.Background(), 100, WithSink(&recordingSink{fail: true}))
	if err != nil {
		t.Fatalf("failing sink must not fail the scan: %v", err)
	}

	if len(plain.Points) != len(withFailing.Points) ||
		len(plain.Violations) != len(withFailing.Violations) {
		t.Errorf("failing sink altered the result: %d/%d points, %d/%d violations",
			len(plain.Points), len(withFailing.Points),
			len(plain.Violations), len(withFailing.Violations))
	}
}

func BenchmarkFindEquilibria(b *testing.B) {
	for _, n := range []int{10_000, 1_000_000} {
		b.Run(benchName("n", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := FindEquilibria(context.Background(), n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
