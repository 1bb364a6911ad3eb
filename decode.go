package bch

import "github.com/templexxx/xorsimd"

// bitSyndromesInto computes the reference (bit-granular) syndromes: S_i =
// XOR over j with received[j] = 1 of alpha_to[(i*j) mod N], for i in
// [1, 2t], converted to log form (sentinel -1 when S_i is zero). Results
// are written into syn[1..2t].
func (c *Codec) bitSyndromesInto(received []int, syn []int) {
	var gf = c.gf
	for i := 1; i <= 2*c.t; i++ {
		var acc int
		for j := 0; j < c.n; j++ {
			if received[j] != 0 {
				acc ^= gf.alphaTo[gf.modn(i*j)]
			}
		}
		syn[i] = gf.indexOf[acc]
	}
}

// byteSyndromesInto computes syndromes from an already-XORed ecc diff
// buffer (ecc_calc XOR ecc_received): evaluating the diff polynomial at
// alpha^i via Horner's scheme over its bytes, stepping by alpha^(8i),
// using the syndrome LUT per byte. Diff bytes are walked from most
// significant (highest-degree group) to least, matching the diff's
// LSB-first-within-byte, byte-index-ascending-degree packing.
func (c *Codec) byteSyndromesInto(diff []byte, syn []int) {
	var gf = c.gf
	for i := 1; i <= 2*c.t; i++ {
		var base = gf.alphaTo[gf.modn(8*i)]
		var acc int
		var row = c.syndromeLUT[i]
		for k := len(diff) - 1; k >= 0; k-- {
			acc = gfMul(gf, acc, base) ^ row[diff[k]]
		}
		syn[i] = gf.indexOf[acc]
	}
}

func allZeroLog(syn []int, t int) bool {
	for i := 1; i <= 2*t; i++ {
		if syn[i] != -1 {
			return false
		}
	}
	return true
}

// berlekampMassey runs the iterative error-locator construction: at each
// step u it computes the next discrepancy from the current candidate
// locator and the known syndromes, and either carries the locator forward
// unchanged (discrepancy zero) or folds in a correction term built from an
// earlier step q. The step q is the one with the largest u-l(u) among the
// earlier steps with a nonzero discrepancy; among equal values the most
// recent such step is kept. Returns the error-locator polynomial's log-form coefficients
// (indices [0, lDeg]) and its degree, or ok=false if the degree would
// exceed t, meaning the channel introduced more errors than this code can
// correct.
func (c *Codec) berlekampMassey(w *decodeWorkspace) (lambda []int, lDeg int, ok bool) {
	var gf = c.gf
	var t = c.t

	var l = w.l
	var uLu = w.uLu
	var discr = w.discrepancy
	var elp = w.elp
	var syn = w.syn

	l[0], l[1] = 0, 0
	uLu[0], uLu[1] = -1, 0
	discr[0] = 0
	discr[1] = syn[1]
	for i := 1; i <= t; i++ {
		elp[0][i] = -1
	}
	elp[1][0] = 1
	for i := 1; i <= t; i++ {
		elp[1][i] = 0
	}

	var sAt = func(idx int) int {
		if idx < 1 || idx > 2*t {
			return -1
		}
		return syn[idx]
	}

	var u = 0
	var uPlus1 = 1
	for {
		u++
		if discr[u] == -1 {
			l[u+1] = l[u]
			for i := 0; i <= l[u]; i++ {
				elp[u+1][i] = elp[u][i]
			}
			for i := l[u] + 1; i <= t; i++ {
				elp[u+1][i] = 0
			}
			for i := 0; i <= l[u]; i++ {
				elp[u][i] = gf.indexOf[elp[u][i]]
			}
		} else {
			var q = u - 1
			for q > 0 && discr[q] == -1 {
				q--
			}
			if q > 0 {
				for j := q - 1; j >= 1; j-- {
					if discr[j] != -1 && uLu[j] > uLu[q] {
						q = j
					}
				}
			}

			if l[u] > l[q]+u-q {
				l[u+1] = l[u]
			} else {
				l[u+1] = l[q] + u - q
			}

			for i := range elp[u+1] {
				elp[u+1][i] = 0
			}
			for i := 0; i <= l[q]; i++ {
				if elp[q][i] != -1 {
					var idx = i + u - q
					if idx <= t {
						elp[u+1][idx] ^= gf.alphaTo[gf.modn(discr[u]-discr[q]+elp[q][i])]
					}
				}
			}
			for i := 0; i <= l[u]; i++ {
				elp[u+1][i] ^= elp[u][i]
			}
			for i := 0; i <= l[u]; i++ {
				elp[u][i] = gf.indexOf[elp[u][i]]
			}
		}

		uLu[u+1] = u - l[u+1]

		if u < 2*t {
			var acc int
			if s := sAt(u + 1); s != -1 {
				acc = gf.alphaTo[s]
			}
			for i := 1; i <= l[u+1] && i <= t; i++ {
				var s = sAt(u + 1 - i)
				if s != -1 && elp[u+1][i] != 0 {
					acc ^= gf.alphaTo[gf.modn(s+gf.indexOf[elp[u+1][i]])]
				}
			}
			discr[u+1] = gf.indexOf[acc]
		}

		uPlus1 = u + 1
		if !(u < 2*t && l[u+1] <= t) {
			break
		}
	}

	if l[uPlus1] > t {
		return nil, 0, false
	}

	var finalElp = elp[uPlus1]
	for i := 0; i <= l[uPlus1]; i++ {
		finalElp[i] = gf.indexOf[finalElp[i]]
	}
	return finalElp, l[uPlus1], true
}

// chienSearch evaluates the error-locator polynomial at alpha^-i for
// every i in [1, N], recording a bit position N-i wherever it vanishes —
// those are exactly the roots of the locator, and each root identifies one
// error position. Returns the located positions (reusing the workspace's
// loc slice) and their count.
func (c *Codec) chienSearch(w *decodeWorkspace, lambda []int, lDeg int) ([]int, int) {
	var gf = c.gf
	var reg = w.chienReg
	for j := 1; j <= lDeg; j++ {
		reg[j] = lambda[j]
	}

	w.loc = w.loc[:0]
	for i := 1; i <= c.n; i++ {
		var q = 1
		for j := 1; j <= lDeg; j++ {
			if reg[j] != -1 {
				reg[j] = gf.modn(reg[j] + j)
				q ^= gf.alphaTo[reg[j]]
			}
		}
		if q == 0 {
			w.loc = append(w.loc, c.n-i)
		}
	}
	return w.loc, len(w.loc)
}

// decodeBitsRaw is the reference (bit-granular) decoder. received must
// have length N; on success it writes the corrected K-bit message into
// out and returns true.
func (c *Codec) decodeBitsRaw(received []int, out []int) bool {
	var w = c.wsPool.get()
	defer c.wsPool.put(w)

	c.bitSyndromesInto(received, w.syn)
	if allZeroLog(w.syn, c.t) {
		copy(out, received[c.nRdncy:])
		return true
	}

	lambda, lDeg, ok := c.berlekampMassey(w)
	if !ok {
		w.lastFailure = decodeFailBMOverflow
		return false
	}

	locs, count := c.chienSearch(w, lambda, lDeg)
	if count != lDeg {
		w.lastFailure = decodeFailChienRootMismatch
		return false
	}
	for _, loc := range locs {
		if loc < 0 || loc >= c.n {
			w.lastFailure = decodeFailLocationOutOfRange
			return false
		}
	}

	var corrected = make([]int, c.n)
	copy(corrected, received)
	for _, loc := range locs {
		corrected[loc] ^= 1
	}
	copy(out, corrected[c.nRdncy:])
	return true
}

// decodeBytesRaw is the fast (byte-granular) decoder. It corrects up to t
// errors in place across data and ecc, returning the number of
// corrections (>= 0) or a negative value on uncorrectable failure.
func (c *Codec) decodeBytesRaw(data []byte, ecc []byte) int {
	var w = c.wsPool.get()
	defer c.wsPool.put(w)

	var eccCalc = c.encodeBytesRaw(data)
	var diff = make([]byte, len(ecc))
	xorsimd.Bytes(diff, eccCalc, ecc)

	c.byteSyndromesInto(diff, w.syn)
	if allZeroLog(w.syn, c.t) {
		return 0
	}

	lambda, lDeg, ok := c.berlekampMassey(w)
	if !ok {
		w.lastFailure = decodeFailBMOverflow
		return -1
	}

	locs, count := c.chienSearch(w, lambda, lDeg)
	if count != lDeg {
		w.lastFailure = decodeFailChienRootMismatch
		return -1
	}
	for _, loc := range locs {
		if loc < 0 || loc >= c.n {
			w.lastFailure = decodeFailLocationOutOfRange
			return -1
		}
	}

	for _, loc := range locs {
		flipCodewordBit(data, ecc, c.k, c.nRdncy, loc)
	}
	return count
}

// flipCodewordBit flips the bit at bit-domain location loc ([0, nRdncy) is
// parity, [nRdncy, N) is message), mapping it through the byte-packing
// conventions this package uses: parity bits are LSB-first in ecc,
// message bits are MSB-first with stream_pos = K-1-i in data.
func flipCodewordBit(data, ecc []byte, k, nRdncy, loc int) {
	if loc < nRdncy {
		ecc[loc/8] ^= 1 << uint(loc%8)
		return
	}
	var i = loc - nRdncy
	var streamPos = k - 1 - i
	var byteIdx = streamPos / 8
	var bitInByte = 7 - (streamPos % 8)
	data[byteIdx] ^= 1 << uint(bitInByte)
}
