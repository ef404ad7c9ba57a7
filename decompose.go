package zeck

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvariant reports a broken internal invariant: a decomposition whose
// reconstructed sum or adjacency structure contradicts the underlying
// theorem. Seeing it means an implementation bug, not bad input.
var ErrInvariant = errors.New("decomposition invariant violated")

// Representation is an exact decomposition of N over a basis sequence.
//
// Indices are strictly decreasing ranks into the basis; Values are the
// corresponding basis values in the same order; sum(Values) == N always.
// For the Zeckendorf basis no two indices differ by 1. A Representation is a
// pure value object recomputed on demand; it holds copies of every big.Int
// and shares nothing with the table it was derived from.
type Representation struct {
	N       *big.Int
	Indices []int
	Values  []*big.Int
	Count   int
}

// Sum reconstructs the represented integer from Values.
func (r *Representation) Sum() *big.Int {
	sum := new(big.Int)
	for _, v := range r.Values {
		sum.Add(sum, v)
	}
	return sum
}

// DecomposeZeckendorf returns the unique Zeckendorf representation of n ≥ 0:
// a descending, pairwise non-adjacent list of Fibonacci indices (ranks ≥ 2,
// so F(2)=1 is the smallest usable term) whose values sum exactly to n.
//
// The greedy choice, largest Fibonacci value not exceeding the residual
// then skipping the immediately preceding index, is guaranteed by
// Zeckendorf's theorem to produce the unique minimal representation. The sum
// and non-adjacency postconditions are still checked on every call and a
// failure surfaces as ErrInvariant. n=0 yields an empty representation.
// Complexity O(log n).
func DecomposeZeckendorf(n *big.Int) (*Representation, error) {
	if n == nil {
		return nil, errors.New("decompose zeckendorf: nil input")
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("decompose zeckendorf(%s): %w", n, ErrNegativeIndex)
	}

	rep := &Representation{N: new(big.Int).Set(n)}
	if n.Sign() == 0 {
		return rep, nil
	}

	t := tableAbove(n)
	r := new(big.Int).Set(n)
	for i := len(t.fib) - 1; i >= 2 && r.Sign() > 0; i-- {
		if t.fib[i].Cmp(r) <= 0 {
			rep.Indices = append(rep.Indices, i)
			rep.Values = append(rep.Values, new(big.Int).Set(t.fib[i]))
			r.Sub(r, t.fib[i])
			i-- // non-adjacency: F(i-1) can never follow F(i)
		}
	}
	rep.Count = len(rep.Indices)

	if err := checkZeckendorf(rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func checkZeckendorf(rep *Representation) error {
	if rep.Sum().Cmp(rep.N) != 0 {
		return fmt.Errorf("zeckendorf(%s): sum %s: %w", rep.N, rep.Sum(), ErrInvariant)
	}
	for i := 1; i < len(rep.Indices); i++ {
		if rep.Indices[i-1]-rep.Indices[i] < 2 {
			return fmt.Errorf("zeckendorf(%s): adjacent indices %d,%d: %w",
				rep.N, rep.Indices[i-1], rep.Indices[i], ErrInvariant)
		}
	}
	return nil
}

// DecomposeLucas returns a greedy Lucas decomposition of n ≥ 0.
//
// Policy (implementation-defined, unlike the Zeckendorf case which is fixed
// by theorem): terms are chosen greedily by strictly descending VALUE over
// the distinct Lucas values {…, 7, 4, 3, 2, 1}, each value used at most
// once. Because both 2=L(0) and 1=L(1) are in the basis the residual always
// reaches zero, so the "repeat L(1)" fallback seen in formulations that drop
// L(0) is never needed here. Index order in the result follows value order,
// which places index 0 (value 2) after index 2 (value 3) and before index 1
// (value 1); indices are therefore NOT guaranteed non-adjacent or sorted,
// and only the sum postcondition is checked.
//
// A direct consequence used by the equilibrium scanner: Count == 1 exactly
// when n itself is a Lucas number.
func DecomposeLucas(n *big.Int) (*Representation, error) {
	if n == nil {
		return nil, errors.New("decompose lucas: nil input")
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("decompose lucas(%s): %w", n, ErrNegativeIndex)
	}

	rep := &Representation{N: new(big.Int).Set(n)}
	if n.Sign() == 0 {
		return rep, nil
	}

	t := tableAbove(n)
	r := new(big.Int).Set(n)
	take := func(i int) {
		rep.Indices = append(rep.Indices, i)
		rep.Values = append(rep.Values, new(big.Int).Set(t.luc[i]))
		r.Sub(r, t.luc[i])
	}
	// L(2)=3 upward is ascending, so descending value order is descending
	// index order down to 2, then L(0)=2, then L(1)=1.
	for i := len(t.luc) - 1; i >= 2 && r.Sign() > 0; i-- {
		if t.luc[i].Cmp(r) <= 0 {
			take(i)
		}
	}
	if r.Sign() > 0 && t.luc[0].Cmp(r) <= 0 {
		take(0)
	}
	if r.Sign() > 0 && t.luc[1].Cmp(r) <= 0 {
		take(1)
	}
	rep.Count = len(rep.Indices)

	if rep.Sum().Cmp(rep.N) != 0 {
		return nil, fmt.Errorf("lucas(%s): sum %s: %w", rep.N, rep.Sum(), ErrInvariant)
	}
	return rep, nil
}
