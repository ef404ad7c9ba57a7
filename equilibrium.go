package zeck

import (
	"context"
	"fmt"
	"strconv"
)

// EquilibriumPoint is an index n with S(n) = 0 whose successor is a Lucas
// number: n+1 = L(LucasIndex).
type EquilibriumPoint struct {
	N          int
	LucasIndex int
}

// Violation records a theorem mismatch found during a scan: either S(n) = 0
// while n+1 is not a Lucas number, or n+1 = L(m) while S(n) ≠ 0. Violations
// are data, returned inline with the batch result; they never abort a scan
// and are never silently dropped.
type Violation struct {
	N      int
	Reason string
}

// ScanResult is the outcome of a batch equilibrium scan over [0, N].
type ScanResult struct {
	Points     []EquilibriumPoint
	Violations []Violation
}

// Sink observes discovered equilibria, e.g. an external pattern store.
//
// The scanner invokes a Sink only after the numeric result for an index is
// final, and ignores every error it returns: a missing or failing sink can
// never alter a computed value.
type Sink interface {
	StoreEquilibrium(EquilibriumPoint) error
	StorePatternSignature(signature string, exampleIDs []string) error
}

// ScanOption configures FindEquilibria.
type ScanOption func(*scanConfig)

type scanConfig struct {
	sink   Sink
	shards int
}

// WithSink attaches an observer for discovered equilibria.
func WithSink(s Sink) ScanOption {
	return func(c *scanConfig) { c.sink = s }
}

// WithShards computes the underlying profile with ProfileParallel across the
// given number of shards. The scan result is identical either way.
func WithShards(n int) ScanOption {
	return func(c *scanConfig) { c.shards = n }
}

// patternSignature labels the equilibrium family reported to a Sink.
const patternSignature = "lucas-boundary-equilibria"

// FindEquilibria scans [0, n] for zeros of the divergence S and
// cross-validates each candidate against the Lucas-boundary theorem in both
// directions. A zero whose successor is L(m) becomes an EquilibriumPoint; a
// zero whose successor is not a Lucas number, or a Lucas boundary that is
// not a zero, becomes a Violation. Membership is decided against the
// generated Lucas sequence, which agrees with DecomposeLucas(n+1).Count == 1
// under the documented decomposition policy.
//
// Cost is O(n log n), dominated by the cumulative pass.
func FindEquilibria(ctx context.Context, n int, opts ...ScanOption) (*ScanResult, error) {
	var cfg scanConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		prof *CumulativeProfile
		err  error
	)
	if cfg.shards > 1 {
		prof, err = ProfileParallel(ctx, n, cfg.shards)
	} else {
		prof, err = Profile(ctx, n)
	}
	if err != nil {
		return nil, err
	}

	// Lucas successor index lookup for the whole range in one pass.
	// Both head values are boundaries: 1 = L(1), 2 = L(0).
	boundary := make(map[int]int)
	c, err := newCounter(int64(n) + 1)
	if err != nil {
		return nil, err
	}
	boundary[2] = 0
	boundary[1] = 1
	for i := 2; i < len(c.luc); i++ {
		if c.luc[i] <= int64(n)+1 {
			boundary[int(c.luc[i])] = i
		}
	}

	res := &ScanResult{}
	for k := 0; k <= n; k++ {
		m, isBoundary := boundary[k+1]
		zero := prof.S[k] == 0
		switch {
		case zero && isBoundary:
			p := EquilibriumPoint{N: k, LucasIndex: m}
			res.Points = append(res.Points, p)
			if cfg.sink != nil {
				_ = cfg.sink.StoreEquilibrium(p)
			}
		case zero && !isBoundary:
			res.Violations = append(res.Violations, Violation{
				N:      k,
				Reason: fmt.Sprintf("S(%d)=0 but %d is not a Lucas number", k, k+1),
			})
		case !zero && isBoundary:
			res.Violations = append(res.Violations, Violation{
				N:      k,
				Reason: fmt.Sprintf("%d = L(%d) but S(%d)=%d", k+1, m, k, prof.S[k]),
			})
		}
	}

	if cfg.sink != nil && len(res.Points) > 0 {
		ids := make([]string, len(res.Points))
		for i, p := range res.Points {
			ids[i] = strconv.Itoa(p.N)
		}
		_ = cfg.sink.StorePatternSignature(patternSignature, ids)
	}
	return res, nil
}
