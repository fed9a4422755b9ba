// SPDX-License-Identifier: MIT

/*
Package deflate implements a streaming DEFLATE (RFC 1951) compressor, with
optional zlib (RFC 1950) framing. There is no decompressor: inflate is
treated as an external collaborator, exercised only by this package's own
tests via the standard library's compress/flate and compress/zlib.

# One-shot use

	out, err := deflate.Compress(data, nil)              // raw DEFLATE, default options
	out, err := deflate.CompressZlib(data, deflate.HighOptions())

# Streaming use

	w := deflate.NewWriter(sink, deflate.DefaultOptions(), nil)
	if _, err := w.Write(chunk); err != nil { ... }
	if err := w.Flush(deflate.FlushSync); err != nil { ... } // resynchronizable checkpoint
	if err := w.Finish(); err != nil { ... }

NewZlibWriter wraps the same pipeline with zlib's header and Adler-32
trailer.

# Compression levels

FastOptions, DefaultOptions, and HighOptions trade ratio for speed by
widening the hash-chain search and enabling lazy matching; OptionsForLevel
picks one from the Level enum. CompressionOptions.Special can force every
block to a single DEFLATE block type (ForceFixed, ForceStored) instead of
choosing per-block.
*/
package deflate
