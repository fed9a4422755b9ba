// SPDX-License-Identifier: MIT

package deflate

import "errors"

// Sentinel errors. Any non-nil error returned from the wrapped sink is
// propagated unchanged; these are the errors this package originates itself.
var (
	// ErrInternal is returned when the encoder hits an internal invariant
	// violation (an over-long Huffman code, a zero match distance reaching
	// the block emitter, a missing end-of-block symbol). These indicate a
	// bug in this package, not bad input: any byte sequence is valid input.
	// Callers can check for it with errors.Is(err, deflate.ErrInternal).
	ErrInternal = errors.New("deflate: internal invariant violation")

	// ErrClosed is returned by Write/Flush when called after Finish has
	// already run.
	ErrClosed = errors.New("deflate: write after finish")
)
