// SPDX-License-Identifier: MIT

package deflate

import (
	"encoding/binary"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// zlibDeflateMethod and zlibMaxWindowInfo make up the CMF byte: CM=8 (deflate),
// CINFO=7 (32K window).
const (
	zlibDeflateMethod = 8
	zlibMaxWindowInfo = 7
	zlibCMF           = zlibMaxWindowInfo<<4 | zlibDeflateMethod

	// zlibFlevelDefault occupies FLG's top 2 bits, the advisory compression
	// level hint (0=fastest, 1=fast, 2=default, 3=maximum). It is informational
	// only and never consulted by a decompressor, so it is always reported as
	// "default" regardless of the actual CompressionOptions in effect.
	zlibFlevelDefault = 2 << 6
)

// ZlibWriter wraps a Writer with the RFC 1950 zlib framing: a 2-byte header
// up front and a big-endian Adler-32 trailer on Finish.
type ZlibWriter struct {
	inner     *Writer
	sink      io.Writer
	headerOut bool
}

// NewZlibWriter creates a zlib-framed DEFLATE encoder. A nil opts selects
// DefaultOptions.
func NewZlibWriter(sink io.Writer, opts *CompressionOptions, logger *logrus.Logger) *ZlibWriter {
	if opts == nil {
		opts = DefaultOptions()
	}
	z := &ZlibWriter{sink: sink}
	z.inner = &Writer{
		state: newEncoderState(sink, opts, newAdler32Checksum(), logHook{logger: logger}),
		opts:  opts,
	}
	runtime.SetFinalizer(z, finalizeZlibWriter)
	return z
}

func finalizeZlibWriter(z *ZlibWriter) {
	if !z.inner.closed {
		_ = z.Finish()
	}
}

func (z *ZlibWriter) writeHeader() error {
	if z.headerOut {
		return nil
	}
	// FLG's low 5 bits (FCHECK) are chosen so that CMF*256+FLG is a multiple
	// of 31, per RFC 1950 §2.2. FDICT is always 0.
	header := uint16(zlibCMF)<<8 | uint16(zlibFlevelDefault)
	fcheck := 31 - (header % 31)
	if fcheck == 31 {
		fcheck = 0
	}
	header |= fcheck
	if _, err := z.sink.Write([]byte{byte(header >> 8), byte(header)}); err != nil {
		return err
	}
	z.headerOut = true
	return nil
}

// Write feeds data into the encoder, writing the zlib header first if this
// is the first call.
func (z *ZlibWriter) Write(p []byte) (int, error) {
	if err := z.writeHeader(); err != nil {
		return 0, err
	}
	return z.inner.Write(p)
}

// Flush mirrors Writer.Flush.
func (z *ZlibWriter) Flush(mode FlushMode) error {
	if err := z.writeHeader(); err != nil {
		return err
	}
	return z.inner.Flush(mode)
}

// Finish closes the inner DEFLATE stream and appends the Adler-32 trailer.
func (z *ZlibWriter) Finish() error {
	if err := z.writeHeader(); err != nil {
		return err
	}
	if err := z.inner.Finish(); err != nil {
		return err
	}
	var trailer [4]byte
	binary.BigEndian.PutUint32(trailer[:], z.inner.state.checksum.sum32())
	_, err := z.sink.Write(trailer[:])
	runtime.SetFinalizer(z, nil)
	return err
}

// Reset rebinds the writer to a new sink, including re-emitting the zlib
// header on the next Write.
func (z *ZlibWriter) Reset(sink io.Writer) io.Writer {
	old := z.sink
	z.sink = sink
	z.inner.state.reset(sink)
	z.inner.state.checksum = newAdler32Checksum()
	z.inner.closed = false
	z.headerOut = false
	runtime.SetFinalizer(z, nil) // clear any finalizer still set by an unfinished stream
	runtime.SetFinalizer(z, finalizeZlibWriter)
	return old
}
