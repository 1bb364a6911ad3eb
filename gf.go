package bch

import "fmt"

// gfTables holds the antilog/log tables of GF(2^m): alpha_to[i] = alpha^i,
// index_of[x] = log_alpha(x), with index_of[0] = -1 as the log-of-zero
// sentinel. Both tables are immutable after construction.
type gfTables struct {
	m       int
	n       int
	alphaTo []int // length n+1, alphaTo[i] in [0, 2^m)
	indexOf []int // length n+1, indexOf[0] == -1
}

// modn reduces an exponent into [0, n).
func (g *gfTables) modn(x int) int {
	x %= g.n
	if x < 0 {
		x += g.n
	}
	return x
}

// buildGF constructs GF(2^m) from primitive polynomial p (length m+1,
// p[0] = p[m] = 1):
//
//  1. alpha_to[i] = 2^i for i in [0, m); record index_of[2^i] = i.
//  2. alpha_to[m] = the polynomial representation of alpha^m, i.e. the XOR
//     of 2^i for every i < m with p[i] = 1.
//  3. For i in [m+1, n): double the previous value, reducing through the
//     primitive polynomial whenever the top bit would overflow m bits.
//  4. index_of[0] = -1, the zero sentinel.
//
// This is the usual antilog/log table doubling recurrence: each step
// multiplies the previous power of alpha by x, folding back through p(x)
// whenever the result would need an (m+1)-th bit.
//
// Returns an error wrapping ErrInvalidArgument if p is not in fact
// primitive for degree m: the iterative doubling must visit every nonzero
// element of GF(2^m) exactly once before returning to alpha^0 = 1.
func buildGF(m int, p []int) (*gfTables, error) {
	var n = (1 << uint(m)) - 1

	g := &gfTables{
		m:       m,
		n:       n,
		alphaTo: make([]int, n+1),
		indexOf: make([]int, n+1),
	}
	for i := range g.indexOf {
		g.indexOf[i] = -2 // unset sentinel, distinct from the log-of-zero -1
	}

	var half = 1 << uint(m-1)

	// Step 1.
	for i := 0; i < m; i++ {
		var v = 1 << uint(i)
		g.alphaTo[i] = v
		g.indexOf[v] = i
	}

	// Step 2.
	var am int
	for i := 0; i < m; i++ {
		if p[i] != 0 {
			am ^= 1 << uint(i)
		}
	}
	g.alphaTo[m] = am
	if g.indexOf[am] == -2 {
		g.indexOf[am] = m
	}

	// Step 3.
	for i := m + 1; i < n; i++ {
		var prev = g.alphaTo[i-1]
		var v int
		if prev < half {
			v = prev << 1
		} else {
			v = am ^ ((prev ^ half) << 1)
		}
		g.alphaTo[i] = v
		if g.indexOf[v] != -2 {
			return nil, fmt.Errorf("%w: primitive polynomial for m=%d is not primitive (order < %d)", ErrInvalidArgument, m, n)
		}
		g.indexOf[v] = i
	}

	for x := 1; x <= n; x++ {
		if g.indexOf[x] == -2 {
			return nil, fmt.Errorf("%w: primitive polynomial for m=%d is not primitive (incomplete cycle)", ErrInvalidArgument, m)
		}
	}

	// Step 4.
	g.indexOf[0] = -1
	g.alphaTo[n] = g.alphaTo[0]

	return g, nil
}
