package zeck

import "fmt"

// CumulativePoint is one step of an incremental scan: the profile values at
// index N plus the boundary annotation (LucasIndex = m when N+1 = L(m),
// otherwise -1).
type CumulativePoint struct {
	N          int
	V, U, S, D int64
	LucasIndex int
}

// Equilibrium reports whether this point is a theorem-consistent equilibrium.
func (p CumulativePoint) Equilibrium() bool {
	return p.S == 0 && p.LucasIndex >= 0
}

// Watcher advances the divergence series one index at a time without
// re-running a batch scan. Its entire state is the next index and the last
// (V, U) pair plus the shared count tables; it grows those tables on demand
// and holds nothing else between steps. Zero value is not usable; construct
// with NewWatcher. A Watcher is not safe for concurrent use.
type Watcher struct {
	next   int
	v, u   int64
	counts *counter
}

// NewWatcher returns a watcher positioned before index 0.
func NewWatcher() *Watcher {
	c, _ := newCounter(2) // never fails for small bounds
	return &Watcher{counts: c}
}

// Step computes the next index and advances the watcher. The sequence of
// points matches Profile index-for-index.
func (w *Watcher) Step() (CumulativePoint, error) {
	k := w.next
	if err := w.ensure(int64(k) + 1); err != nil {
		return CumulativePoint{}, err
	}

	z := w.counts.zeckendorf(int64(k))
	l := w.counts.lucas(int64(k))
	w.v += z
	w.u += l
	w.next++

	p := CumulativePoint{
		N:          k,
		V:          w.v,
		U:          w.u,
		S:          w.v - w.u,
		D:          z - l,
		LucasIndex: -1,
	}
	succ := int64(k) + 1
	switch succ {
	case 2:
		p.LucasIndex = 0
	case 1:
		p.LucasIndex = 1
	default:
		for i := 2; i < len(w.counts.luc); i++ {
			if w.counts.luc[i] == succ {
				p.LucasIndex = i
				break
			}
		}
	}
	return p, nil
}

// ensure grows the count tables until they cover n.
func (w *Watcher) ensure(n int64) error {
	last := w.counts.fib[len(w.counts.fib)-1]
	if last > n && w.counts.luc[len(w.counts.luc)-1] > n {
		return nil
	}
	c, err := newCounter(n)
	if err != nil {
		return fmt.Errorf("watcher at %d: %w", w.next, err)
	}
	w.counts = c
	return nil
}
