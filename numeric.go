package zeck

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// Kind tags a Number with its numeric domain. The set is closed: there are
// no user-defined kinds and no implicit coercion between them.
type Kind int

const (
	KindNatural Kind = iota // integer ≥ 0
	KindInteger             // any integer
	KindReal                // finite float64
	KindComplex             // finite complex128
)

func (k Kind) String() string {
	switch k {
	case KindNatural:
		return "natural"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrKindMismatch reports a value rejected by a validating constructor, for
// example a negative input offered as a Natural. Constructors fail instead
// of coercing.
var ErrKindMismatch = errors.New("value does not satisfy kind")

// Number is a tagged numeric value. It replaces runtime "branding" of
// loosely-typed values with a validated variant: a Number can only be built
// through a constructor that checked its kind's constraint.
type Number struct {
	kind   Kind
	i      *big.Int
	re, im float64
}

// NewNatural validates v ≥ 0 and tags it KindNatural.
func NewNatural(v *big.Int) (Number, error) {
	if v == nil {
		return Number{}, fmt.Errorf("natural: nil value: %w", ErrKindMismatch)
	}
	if v.Sign() < 0 {
		return Number{}, fmt.Errorf("natural: %s is negative: %w", v, ErrKindMismatch)
	}
	return Number{kind: KindNatural, i: new(big.Int).Set(v)}, nil
}

// NewInteger tags any exact integer KindInteger.
func NewInteger(v *big.Int) (Number, error) {
	if v == nil {
		return Number{}, fmt.Errorf("integer: nil value: %w", ErrKindMismatch)
	}
	return Number{kind: KindInteger, i: new(big.Int).Set(v)}, nil
}

// NewReal validates v as a finite real and tags it KindReal.
func NewReal(v float64) (Number, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}, fmt.Errorf("real: %v: %w", v, ErrKindMismatch)
	}
	return Number{kind: KindReal, re: v}, nil
}

// NewComplex validates both components as finite and tags the value
// KindComplex.
func NewComplex(re, im float64) (Number, error) {
	for _, c := range [2]float64{re, im} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Number{}, fmt.Errorf("complex: %v+%vi: %w", re, im, ErrKindMismatch)
		}
	}
	return Number{kind: KindComplex, re: re, im: im}, nil
}

// ParseNatural parses a base-10 string into a KindNatural Number. This is
// the API-boundary entry point used by callers that accept text input.
func ParseNatural(s string) (Number, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Number{}, fmt.Errorf("natural: %q is not an integer: %w", s, ErrKindMismatch)
	}
	return NewNatural(v)
}

// Kind returns the validated kind tag.
func (n Number) Kind() Kind { return n.kind }

// Int returns the exact integer value for KindNatural and KindInteger.
func (n Number) Int() (*big.Int, bool) {
	if n.i == nil || (n.kind != KindNatural && n.kind != KindInteger) {
		return nil, false
	}
	return new(big.Int).Set(n.i), true
}

// Float returns the real value for KindReal.
func (n Number) Float() (float64, bool) {
	if n.kind != KindReal {
		return 0, false
	}
	return n.re, true
}

// Complex returns the value for KindComplex.
func (n Number) Complex() (complex128, bool) {
	if n.kind != KindComplex {
		return 0, false
	}
	return complex(n.re, n.im), true
}
