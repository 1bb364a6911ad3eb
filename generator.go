package bch

import (
	"fmt"
	"sort"
)

// generatorResult holds the output of generator polynomial construction:
// the binary coefficients of g(x), low degree first (g[0] is always 1 for
// a valid construction).
type generatorResult struct {
	g []int // coefficients in {0,1}, length nRdncy+1
}

// nRdncy returns deg(g).
func (gr *generatorResult) nRdncy() int {
	return len(gr.g) - 1
}

// cyclotomicCosets enumerates the 2-cyclotomic cosets of Z/nZ: starting
// from the smallest uncovered representative, walk r, 2r mod n, 4r mod n,
// ... until the cycle closes. Residue 0 is never a representative we start
// from and never appears in a root set, so it is simply left uncovered.
func cyclotomicCosets(n int) [][]int {
	var covered = make([]bool, n)
	var cosets [][]int
	for r := 1; r < n; r++ {
		if covered[r] {
			continue
		}
		var coset []int
		var x = r
		for {
			covered[x] = true
			coset = append(coset, x)
			x = (x * 2) % n
			if x == r {
				break
			}
		}
		cosets = append(cosets, coset)
	}
	return cosets
}

// rootSet returns the sorted union of every cyclotomic coset that
// intersects {1, ..., d-1} — the conjugate-closed exponent set whose
// corresponding linear factors multiply together into the generator
// polynomial.
func rootSet(n, d int) []int {
	var seen = make(map[int]bool)
	for _, coset := range cyclotomicCosets(n) {
		var intersects = false
		for _, x := range coset {
			if x >= 1 && x <= d-1 {
				intersects = true
				break
			}
		}
		if !intersects {
			continue
		}
		for _, x := range coset {
			seen[x] = true
		}
	}
	var roots = make([]int, 0, len(seen))
	for x := range seen {
		roots = append(roots, x)
	}
	sort.Ints(roots)
	return roots
}

// gfMul multiplies two GF(2^m) elements using the log/antilog tables:
// a*b = alpha_to[(index_of[a] + index_of[b]) mod n], with the usual
// zero-operand short-circuit since zero has no logarithm.
func gfMul(g *gfTables, a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return g.alphaTo[g.modn(g.indexOf[a]+g.indexOf[b])]
}

// buildGenerator constructs the generator polynomial g(x) = product over
// the root set of (x - alpha^beta), multiplying one linear factor at a
// time into the running product. Binary BCH coefficients must end up in
// {0,1} once every conjugate in each coset has been multiplied in; if they
// don't, the generator construction itself is buggy and ErrInternal is
// returned rather than silently masked.
func buildGenerator(gt *gfTables, t int) (*generatorResult, error) {
	var d = 2*t + 1
	var roots = rootSet(gt.n, d)

	var poly = []int{1} // g(x) = 1
	for _, beta := range roots {
		var c = gt.alphaTo[gt.modn(beta)]
		var next = make([]int, len(poly)+1)
		for i := range next {
			var fromShift, fromMul int
			if i-1 >= 0 && i-1 < len(poly) {
				fromShift = poly[i-1]
			}
			if i < len(poly) {
				fromMul = gfMul(gt, poly[i], c)
			}
			next[i] = fromShift ^ fromMul
		}
		poly = next
	}

	for i, c := range poly {
		if c != 0 && c != 1 {
			return nil, fmt.Errorf("%w: generator polynomial coefficient g[%d]=%d is not binary", ErrInternal, i, c)
		}
	}
	if poly[0] != 1 {
		return nil, fmt.Errorf("%w: generator polynomial g[0]=%d, want 1", ErrInternal, poly[0])
	}

	return &generatorResult{g: poly}, nil
}
