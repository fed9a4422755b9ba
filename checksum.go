// SPDX-License-Identifier: MIT

package deflate

import (
	"hash"
	"hash/adler32"
)

// rollingChecksum is fed every byte written to the stream and produces the
// trailer value a container format appends (zlib's Adler-32). The plain
// DEFLATE bitstream has no trailer of its own, so the no-op implementation
// lets the same streaming driver serve both.
type rollingChecksum interface {
	write(p []byte)
	sum32() uint32
}

// noChecksum is the zero-cost default for a bare DEFLATE stream.
type noChecksum struct{}

func (noChecksum) write([]byte)    {}
func (noChecksum) sum32() uint32 { return 0 }

// adler32Checksum wraps the standard library's Adler-32, which spec treats
// as an external collaborator rather than a component to build from scratch.
type adler32Checksum struct {
	h hash.Hash32
}

func newAdler32Checksum() *adler32Checksum {
	return &adler32Checksum{h: adler32.New()}
}

func (c *adler32Checksum) write(p []byte) {
	c.h.Write(p)
}

func (c *adler32Checksum) sum32() uint32 {
	return c.h.Sum32()
}
