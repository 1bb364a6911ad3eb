// Package bch implements a standalone binary BCH forward-error-correction
// codec: GF(2^m) table construction, generator-polynomial synthesis from a
// primitive polynomial and design distance, systematic LFSR encoding with an
// 8-bit-parallel fast path, and Berlekamp-Massey/Chien-search decoding with
// bounded-distance correction.
package bch

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Options configures Construct. The zero value is a silent codec with no
// debug tracing.
type Options struct {
	// Logger, if non-nil, receives debug-level traces of construction:
	// m and N once the field tables are built, then the computed
	// n_rdncy and K. The primitive polynomial and the cyclotomic cosets
	// are not traced.
	Logger *log.Logger
}

// Codec holds the immutable dimensions and tables of a single (N, t,
// primitive polynomial) BCH configuration. All exported methods are safe
// for concurrent use: encode reads only immutable state, decode borrows a
// pooled per-call workspace.
type Codec struct {
	m int
	n int
	t int
	k int

	p       []int
	gf      *gfTables
	g       []int
	nRdncy  int
	eccByte int

	encodeLUT   [][]uint32
	syndromeLUT [][]int

	wsPool *workspacePool
	log    traceLogger
}

// Construct builds a Codec for codeword length n = 2^m - 1 (m in [3, 16])
// and correction capacity t. If p is nil, the built-in primitive
// polynomial for m is used; otherwise p must be a length-(m+1) primitive
// polynomial with p[0] = p[m] = 1.
func Construct(n, t int, p []int, opts Options) (*Codec, error) {
	m, err := degreeForN(n)
	if err != nil {
		return nil, err
	}
	if t < 1 {
		return nil, fmt.Errorf("%w: t=%d must be >= 1", ErrInvalidArgument, t)
	}
	if 2*t >= n {
		return nil, fmt.Errorf("%w: 2t=%d must be < N=%d", ErrInvalidArgument, 2*t, n)
	}

	poly := p
	if poly == nil {
		poly = defaultPrimitive(m)
		if poly == nil {
			return nil, fmt.Errorf("%w: no built-in primitive polynomial for m=%d", ErrInvalidArgument, m)
		}
	} else {
		if err := validatePrimitiveShape(poly, m); err != nil {
			return nil, err
		}
	}

	logger := newTraceLogger(opts.Logger)

	gf, err := buildGF(m, poly)
	if err != nil {
		return nil, err
	}
	logger.debugf("gf tables built", "m", m, "n", n)

	gr, err := buildGenerator(gf, t)
	if err != nil {
		return nil, err
	}
	nRdncy := gr.nRdncy()
	k := n - nRdncy
	if k < 1 {
		return nil, fmt.Errorf("%w: t=%d leaves no message bits (n_rdncy=%d, N=%d)", ErrInvalidArgument, t, nRdncy, n)
	}
	logger.debugf("generator built", "n_rdncy", nRdncy, "k", k)

	encodeLUT := buildEncodeLUT(gr.g, nRdncy)
	syndromeLUT := buildSyndromeLUT(gf, t)

	c := &Codec{
		m:           m,
		n:           n,
		t:           t,
		k:           k,
		p:           poly,
		gf:          gf,
		g:           gr.g,
		nRdncy:      nRdncy,
		eccByte:     (nRdncy + 7) / 8,
		encodeLUT:   encodeLUT,
		syndromeLUT: syndromeLUT,
		wsPool:      newWorkspacePool(t, n),
		log:         logger,
	}
	return c, nil
}

// degreeForN returns m such that n = 2^m - 1 for some m in [3, 16], or an
// error if no such m exists.
func degreeForN(n int) (int, error) {
	for m := 3; m <= 16; m++ {
		if n == (1<<uint(m))-1 {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: N=%d is not 2^m-1 for m in [3,16]", ErrInvalidArgument, n)
}

// K returns the message bit count.
func (c *Codec) K() int { return c.k }

// N returns the codeword bit length.
func (c *Codec) N() int { return c.n }

// T returns the correction capacity.
func (c *Codec) T() int { return c.t }

// NRdncy returns the parity bit count (deg(g)).
func (c *Codec) NRdncy() int { return c.nRdncy }

// ECCBytes returns ceil(n_rdncy / 8), the parity byte count.
func (c *Codec) ECCBytes() int { return c.eccByte }

// DataBytes returns ceil(K / 8), the message byte count expected by
// EncodeBytes/DecodeBytes.
func (c *Codec) DataBytes() int { return (c.k + 7) / 8 }

// EncodeBits is the reference bit-granular encoder. msg must have length K
// with every element 0 or 1; returns a fresh length-N codeword.
func (c *Codec) EncodeBits(msg []int) ([]int, error) {
	if len(msg) != c.k {
		return nil, fmt.Errorf("%w: message length %d, want %d", ErrInvalidArgument, len(msg), c.k)
	}
	return c.encodeBitsRaw(msg), nil
}

// EncodeBytes is the fast byte-granular encoder. data must hold at least
// DataBytes() bytes, MSB-first packed; only the top K bits are read. ecc
// must have length ECCBytes() and receives the parity bytes.
func (c *Codec) EncodeBytes(data []byte, ecc []byte) error {
	if len(data) < c.DataBytes() {
		return fmt.Errorf("%w: data length %d, want >= %d", ErrInvalidArgument, len(data), c.DataBytes())
	}
	if len(ecc) != c.eccByte {
		return fmt.Errorf("%w: ecc length %d, want %d", ErrInvalidArgument, len(ecc), c.eccByte)
	}
	copy(ecc, c.encodeBytesRaw(data))
	return nil
}

// DecodeBits is the reference bit-granular decoder. received must have
// length N; out must have length K and receives the corrected message on
// success. Returns false (with out unspecified) on uncorrectable failure.
func (c *Codec) DecodeBits(received []int, out []int) (bool, error) {
	if len(received) != c.n {
		return false, fmt.Errorf("%w: received length %d, want %d", ErrInvalidArgument, len(received), c.n)
	}
	if len(out) != c.k {
		return false, fmt.Errorf("%w: out length %d, want %d", ErrInvalidArgument, len(out), c.k)
	}
	return c.decodeBitsRaw(received, out), nil
}

// DecodeBytes is the fast byte-granular decoder. It corrects up to t errors
// in place across data and ecc. Returns the number of corrections (>= 0),
// or a negative value together with ErrUncorrectable on failure.
func (c *Codec) DecodeBytes(data []byte, ecc []byte) (int, error) {
	if len(data) < c.DataBytes() {
		return -1, fmt.Errorf("%w: data length %d, want >= %d", ErrInvalidArgument, len(data), c.DataBytes())
	}
	if len(ecc) != c.eccByte {
		return -1, fmt.Errorf("%w: ecc length %d, want %d", ErrInvalidArgument, len(ecc), c.eccByte)
	}
	count := c.decodeBytesRaw(data, ecc)
	if count < 0 {
		return count, ErrUncorrectable
	}
	return count, nil
}
