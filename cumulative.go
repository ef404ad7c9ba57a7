package zeck

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// CumulativeProfile holds the divergence series over [0, N].
//
// V[k] and U[k] are the cumulative Zeckendorf and Lucas term counts, S[k]
// their difference and D[k] the per-index difference z(k)-ℓ(k). All four
// slices have length N+1. Counts are O(log k) per index, so every entry fits
// comfortably in int64 for any addressable range; the arbitrary-precision
// contract applies to sequence values, not counts.
type CumulativeProfile struct {
	N int
	V []int64
	U []int64
	S []int64
	D []int64
}

// ctxCheckStride controls how often the fold polls for cancellation.
const ctxCheckStride = 1024

// Profile computes the cumulative divergence profile over [0, n] in a single
// left-to-right fold, O(n log n) total. The fold is stateless and
// order-independent: recomputing any prefix independently yields the same
// values. Cancellable between index steps via ctx.
func Profile(ctx context.Context, n int) (*CumulativeProfile, error) {
	if n < 0 {
		return nil, fmt.Errorf("profile(%d): %w", n, ErrNegativeIndex)
	}
	c, err := newCounter(int64(n))
	if err != nil {
		return nil, err
	}

	p := &CumulativeProfile{
		N: n,
		V: make([]int64, n+1),
		U: make([]int64, n+1),
		S: make([]int64, n+1),
		D: make([]int64, n+1),
	}
	var v, u int64
	for k := 0; k <= n; k++ {
		if k%ctxCheckStride == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		z := c.zeckendorf(int64(k))
		l := c.lucas(int64(k))
		v += z
		u += l
		p.V[k] = v
		p.U[k] = u
		p.S[k] = v - u
		p.D[k] = z - l
	}
	return p, nil
}

// ProfileParallel computes the same profile as Profile by sharding the index
// range across workers. Per-index term counts are independent, so shards fill
// disjoint count slices concurrently; the cumulative V/U/S series then come
// from one sequential prefix-combination pass, which is what makes the shard
// results well-defined before any S value is read. shards < 2 degrades to the
// sequential fold.
func ProfileParallel(ctx context.Context, n, shards int) (*CumulativeProfile, error) {
	if n < 0 {
		return nil, fmt.Errorf("profile(%d): %w", n, ErrNegativeIndex)
	}
	if shards < 2 || n+1 < shards {
		return Profile(ctx, n)
	}
	c, err := newCounter(int64(n))
	if err != nil {
		return nil, err
	}

	zs := make([]int64, n+1)
	ls := make([]int64, n+1)

	g, gctx := errgroup.WithContext(ctx)
	chunk := (n + shards) / shards
	for lo := 0; lo <= n; lo += chunk {
		lo, hi := lo, min(lo+chunk-1, n)
		g.Go(func() error {
			for k := lo; k <= hi; k++ {
				if k%ctxCheckStride == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				zs[k] = c.zeckendorf(int64(k))
				ls[k] = c.lucas(int64(k))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p := &CumulativeProfile{
		N: n,
		V: make([]int64, n+1),
		U: make([]int64, n+1),
		S: make([]int64, n+1),
		D: make([]int64, n+1),
	}
	var v, u int64
	for k := 0; k <= n; k++ {
		v += zs[k]
		u += ls[k]
		p.V[k] = v
		p.U[k] = u
		p.S[k] = v - u
		p.D[k] = zs[k] - ls[k]
	}
	return p, nil
}

// counter provides term counts over int64 inputs using flat value tables.
// It is immutable after construction and safe to share across shards.
type counter struct {
	fib []int64 // fib[i] = F(i); last entry exceeds the range bound
	luc []int64 // luc[i] = L(i); last entry exceeds the range bound
}

func newCounter(n int64) (*counter, error) {
	c := &counter{
		fib: []int64{0, 1, 1},
		luc: []int64{2, 1, 3},
	}
	for c.fib[len(c.fib)-1] <= n {
		next := c.fib[len(c.fib)-1] + c.fib[len(c.fib)-2]
		if next < 0 { // int64 wrap; F(92) is the largest representable
			return nil, fmt.Errorf("range bound %d exceeds int64 sequence space", n)
		}
		c.fib = append(c.fib, next)
	}
	for c.luc[len(c.luc)-1] <= n {
		next := c.luc[len(c.luc)-1] + c.luc[len(c.luc)-2]
		if next < 0 {
			return nil, fmt.Errorf("range bound %d exceeds int64 sequence space", n)
		}
		c.luc = append(c.luc, next)
	}
	return c, nil
}

// zeckendorf returns z(n), the Zeckendorf term count, by the same greedy
// walk as DecomposeZeckendorf.
func (c *counter) zeckendorf(n int64) int64 {
	var count int64
	r := n
	for i := len(c.fib) - 1; i >= 2 && r > 0; i-- {
		if c.fib[i] <= r {
			count++
			r -= c.fib[i]
			i-- // non-adjacency skip
		}
	}
	return count
}

// lucas returns ℓ(n) under the documented policy: greedy by descending value
// over distinct Lucas values, each used at most once.
func (c *counter) lucas(n int64) int64 {
	var count int64
	r := n
	for i := len(c.luc) - 1; i >= 2 && r > 0; i-- {
		if c.luc[i] <= r {
			count++
			r -= c.luc[i]
		}
	}
	if r >= 2 {
		count++
		r -= 2
	}
	if r >= 1 {
		count++
	}
	return count
}
