// Package zeck computes canonical integer decompositions over the Fibonacci
// and Lucas sequences and the cumulative divergence series derived from them.
//
// # Overview
//
// Every positive integer has a unique representation as a sum of
// non-consecutive Fibonacci numbers (Zeckendorf's theorem). A parallel greedy
// decomposition exists against the Lucas numbers. Summing the term counts of
// both decompositions over a range yields two cumulative series whose
// difference S oscillates around zero, and every Lucas-number boundary
// n+1 = L(m) is a zero of S. The package computes the decompositions with
// exact arbitrary-precision arithmetic, folds them into cumulative profiles,
// and scans ranges for these equilibrium points while cross-validating the
// boundary theorem.
//
// # Architecture
//
// The package components:
//
//   - sequence.go    - Exact Fibonacci/Lucas values (dense table + fast doubling)
//   - decompose.go   - Zeckendorf and Lucas greedy decomposers
//   - cumulative.go  - Single-pass V/U/S/d fold over a range
//   - equilibrium.go - Batch zero-crossing scan with theorem validation
//   - stream.go      - Incremental watcher for open-ended ranges
//   - numeric.go     - Tagged numeric variants for API-boundary validation
//   - assertions.go  - Test helpers for decomposition properties
//
// # Quick Start
//
// Decompose an integer and inspect its Zeckendorf representation:
//
//	rep, err := zeck.DecomposeZeckendorf(big.NewInt(100))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// rep.Values = [89 8 3], rep.Indices = [11 6 4], rep.Count = 3
//
// Scan a range for equilibrium points:
//
//	res, err := zeck.FindEquilibria(ctx, 10000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range res.Points {
//	    fmt.Printf("S(%d) = 0, %d = L(%d)\n", p.N, p.N+1, p.LucasIndex)
//	}
//	for _, v := range res.Violations {
//	    fmt.Printf("theorem mismatch: %s\n", v.Reason)
//	}
//
// # The Divergence Series
//
// For each index k, z(k) is the Zeckendorf term count and ℓ(k) the Lucas term
// count. The cumulative profile over [0, N] is:
//
//	V(k) = V(k-1) + z(k)    (total Zeckendorf terms so far)
//	U(k) = U(k-1) + ℓ(k)    (total Lucas terms so far)
//	S(k) = V(k) - U(k)      (divergence)
//	d(k) = z(k) - ℓ(k)      (per-index difference)
//
// V and U are non-decreasing; S and d oscillate in sign.
//
// # The Boundary Theorem
//
// Every Lucas boundary is an equilibrium: if n+1 = L(m) then S(n) = 0. The
// converse does not hold. Between consecutive boundaries the window sums of
// z and of the minimal possible Lucas term counts coincide, which forces S
// back to zero at interior points regardless of decomposition policy (the
// first such point is n=5, where V(5) = U(5) = 6 but 6 is not a Lucas
// number). The scanner therefore reports interior zeros as Violations rather
// than equilibria, and a boundary with S(n) != 0, which would be an
// implementation bug, the same way. Violations are returned inline in the
// batch result; a single inconsistent index never aborts a scan.
//
// # Exactness
//
// All sequence values are *big.Int. Magnitudes pass 2^63 near F(93), well
// inside ranges this package is asked to decompose, and the contract forbids
// floating-point derivation of production values. Term counts are O(log n)
// and their prefix sums stay far inside int64, so profiles use plain int64
// slices.
//
// # Concurrency
//
// Every operation is a pure function of its integer input; there is no shared
// mutable state. Decomposition of independent indices is embarrassingly
// parallel, and ProfileParallel shards a range across workers before a
// sequential prefix combination pass. Long scans are cancellable between
// index steps via context.
//
// # Testing
//
// Use the assertion helpers to validate decomposition properties:
//
//	func TestMyRange(t *testing.T) {
//	    rep, _ := zeck.DecomposeZeckendorf(big.NewInt(4181))
//	    zeck.AssertValidZeckendorf(t, rep)
//
//	    prof, _ := zeck.Profile(context.Background(), 1000)
//	    zeck.AssertNonDecreasing(t, prof.V)
//	    zeck.AssertNonDecreasing(t, prof.U)
//	}
package zeck
