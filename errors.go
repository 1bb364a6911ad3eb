package bch

import "errors"

// Error kinds returned by this package. Callers match against these with
// errors.Is; construction and encode errors wrap one of them with
// fmt.Errorf("...: %w", ...) for context.
var (
	// ErrInvalidArgument covers a bad (N, t) pair, a malformed or
	// non-primitive polynomial, and message/codeword/buffer length
	// mismatches.
	ErrInvalidArgument = errors.New("bch: invalid argument")

	// ErrUncorrectable means decode determined the received word is
	// beyond the codec's bounded-distance correction capability.
	ErrUncorrectable = errors.New("bch: uncorrectable error pattern")

	// ErrInternal means the generator polynomial construction produced
	// a non-binary coefficient. This should never happen for a codec
	// built from a valid primitive polynomial; it indicates a bug in
	// this package and must never be silently swallowed.
	ErrInternal = errors.New("bch: internal error")
)
