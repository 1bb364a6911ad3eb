package bch

import "fmt"

// Built-in primitive polynomials, one per supported GF extension degree m.
//
// Each entry is the full coefficient vector p[0..m], coefficient of x^i at
// position i. p[0] and p[m] are always 1; the table only needs to record
// which interior taps are set, but we store the fully expanded vector here
// so construction never has to special-case the built-in case versus a
// caller-supplied polynomial.
var defaultPrimitivePoly = map[int][]int{
	3:  tapPoly(3, 1),
	4:  tapPoly(4, 1),
	5:  tapPoly(5, 2),
	6:  tapPoly(6, 1),
	7:  tapPoly(7, 1),
	8:  tapPoly(8, 4, 5, 6),
	9:  tapPoly(9, 1),
	10: tapPoly(10, 3),
	11: tapPoly(11, 2),
	12: tapPoly(12, 3, 4, 7),
	13: tapPoly(13, 1, 3, 4),
	14: tapPoly(14, 1, 11, 12),
	15: tapPoly(15, 1),
	16: tapPoly(16, 2, 3, 5),
}

// tapPoly builds a length-(m+1) coefficient vector with p[0] = p[m] = 1 and
// p[i] = 1 for every i in taps.
func tapPoly(m int, taps ...int) []int {
	p := make([]int, m+1)
	p[0] = 1
	p[m] = 1
	for _, i := range taps {
		p[i] = 1
	}
	return p
}

// defaultPrimitive returns the built-in primitive polynomial for the given m,
// or nil if m is out of the supported range [3, 16].
func defaultPrimitive(m int) []int {
	p, ok := defaultPrimitivePoly[m]
	if !ok {
		return nil
	}
	out := make([]int, len(p))
	copy(out, p)
	return out
}

// validatePrimitiveShape checks the structural constraints a caller-supplied
// primitive polynomial must satisfy: length m+1, p[0] = p[m] = 1, and every
// coefficient in {0,1}. It does not check that
// the polynomial is actually primitive; that falls out of GF table
// construction (buildGF returns an error if the multiplicative order isn't
// N).
func validatePrimitiveShape(p []int, m int) error {
	if len(p) != m+1 {
		return fmt.Errorf("%w: primitive polynomial length %d, want %d", ErrInvalidArgument, len(p), m+1)
	}
	if p[0] != 1 {
		return fmt.Errorf("%w: primitive polynomial p[0] must be 1", ErrInvalidArgument)
	}
	if p[m] != 1 {
		return fmt.Errorf("%w: primitive polynomial p[%d] must be 1", ErrInvalidArgument, m)
	}
	for i, c := range p {
		if c != 0 && c != 1 {
			return fmt.Errorf("%w: primitive polynomial coefficient p[%d]=%d not in {0,1}", ErrInvalidArgument, i, c)
		}
	}
	return nil
}
