package zeck

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNegativeIndex reports a negative sequence index or range bound.
// All API entry points fail fast with this error before any computation.
var ErrNegativeIndex = errors.New("negative index")

// Fibonacci returns F(n) exactly, with F(0)=0 and F(1)=1.
//
// Sparse random access runs in O(log n) multiplications via the fast-doubling
// identities; no floating-point approximation is involved at any size.
func Fibonacci(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("fibonacci(%d): %w", n, ErrNegativeIndex)
	}
	f, _ := fibPair(uint(n))
	return f, nil
}

// Lucas returns L(n) exactly, with L(0)=2 and L(1)=1.
//
// Uses the identity L(n) = 2·F(n+1) − F(n), so sparse access costs the same
// O(log n) as Fibonacci.
func Lucas(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("lucas(%d): %w", n, ErrNegativeIndex)
	}
	f, f1 := fibPair(uint(n))
	l := new(big.Int).Lsh(f1, 1)
	return l.Sub(l, f), nil
}

// fibPair returns (F(n), F(n+1)) by fast doubling:
//
//	F(2k)   = F(k) · (2·F(k+1) − F(k))
//	F(2k+1) = F(k)² + F(k+1)²
func fibPair(n uint) (*big.Int, *big.Int) {
	if n == 0 {
		return big.NewInt(0), big.NewInt(1)
	}
	a, b := fibPair(n / 2) // a = F(k), b = F(k+1)

	t := new(big.Int).Lsh(b, 1)
	t.Sub(t, a)
	c := t.Mul(a, t)                // F(2k)
	a2 := new(big.Int).Mul(a, a)
	b2 := new(big.Int).Mul(b, b)
	d := a2.Add(a2, b2) // F(2k+1)

	if n&1 == 0 {
		return c, d
	}
	return d, c.Add(c, d)
}

// Table is an immutable dense lookup table of Fibonacci and Lucas values.
//
// A Table is built once per batch in O(limit) additions and shared by
// reference for the batch's duration. It replaces the ambient mutable caches
// of ad hoc implementations: nothing mutates a Table after construction, so
// sharing across goroutines needs no locking. Accessors hand out defensive
// copies; callers may mutate what they receive freely.
type Table struct {
	fib []*big.Int // fib[i] = F(i)
	luc []*big.Int // luc[i] = L(i)
}

// NewTable generates F(0..limit) and L(0..limit).
func NewTable(limit int) (*Table, error) {
	if limit < 0 {
		return nil, fmt.Errorf("table limit %d: %w", limit, ErrNegativeIndex)
	}
	return newTable(limit), nil
}

func newTable(limit int) *Table {
	t := &Table{
		fib: make([]*big.Int, 0, limit+1),
		luc: make([]*big.Int, 0, limit+1),
	}
	t.fib = append(t.fib, big.NewInt(0), big.NewInt(1))
	t.luc = append(t.luc, big.NewInt(2), big.NewInt(1))
	for i := 2; i <= limit; i++ {
		t.fib = append(t.fib, new(big.Int).Add(t.fib[i-1], t.fib[i-2]))
		t.luc = append(t.luc, new(big.Int).Add(t.luc[i-1], t.luc[i-2]))
	}
	if limit < 1 {
		t.fib = t.fib[:limit+1]
		t.luc = t.luc[:limit+1]
	}
	return t
}

// tableAbove grows a table until both the top Fibonacci and Lucas entries
// exceed n. Used by the decomposers to size the greedy search space.
func tableAbove(n *big.Int) *Table {
	t := newTable(2)
	for t.fib[len(t.fib)-1].Cmp(n) <= 0 || t.luc[len(t.luc)-1].Cmp(n) <= 0 {
		t.grow()
	}
	return t
}

func (t *Table) grow() {
	i := len(t.fib)
	t.fib = append(t.fib, new(big.Int).Add(t.fib[i-1], t.fib[i-2]))
	t.luc = append(t.luc, new(big.Int).Add(t.luc[i-1], t.luc[i-2]))
}

// Len returns the number of indices held, i.e. limit+1.
func (t *Table) Len() int { return len(t.fib) }

// Fib returns a copy of F(i) from the table.
func (t *Table) Fib(i int) (*big.Int, error) {
	if i < 0 {
		return nil, fmt.Errorf("table fib(%d): %w", i, ErrNegativeIndex)
	}
	if i >= len(t.fib) {
		return nil, fmt.Errorf("table fib(%d): index beyond limit %d", i, len(t.fib)-1)
	}
	return new(big.Int).Set(t.fib[i]), nil
}

// Luc returns a copy of L(i) from the table.
func (t *Table) Luc(i int) (*big.Int, error) {
	if i < 0 {
		return nil, fmt.Errorf("table lucas(%d): %w", i, ErrNegativeIndex)
	}
	if i >= len(t.luc) {
		return nil, fmt.Errorf("table lucas(%d): index beyond limit %d", i, len(t.luc)-1)
	}
	return new(big.Int).Set(t.luc[i]), nil
}

// lucasIndexOf reports the index m with L(m) == v, if v is a Lucas number
// within the table. The sequence is ascending from L(2)=3 onward; the two
// head values 2 and 1 are checked separately.
func (t *Table) lucasIndexOf(v *big.Int) (int, bool) {
	switch {
	case v.Cmp(t.luc[0]) == 0:
		return 0, true
	case v.Cmp(t.luc[1]) == 0:
		return 1, true
	}
	for i := 2; i < len(t.luc); i++ {
		switch t.luc[i].Cmp(v) {
		case 0:
			return i, true
		case 1:
			return 0, false
		}
	}
	return 0, false
}
