// SPDX-License-Identifier: MIT

package deflate

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// FlushMode selects how aggressively Flush pushes buffered data out.
type FlushMode int

const (
	// FlushNone processes whatever is already available but leaves any
	// lookahead margin and partial block alone. Equivalent to a no-op Flush.
	FlushNone FlushMode = iota
	// FlushSync forces every byte written so far out as complete blocks,
	// byte-aligns the stream, and appends the 00 00 FF FF sync marker so a
	// reader can resynchronize. Writing may continue afterwards.
	FlushSync
	// FlushFinish is equivalent to calling Finish.
	FlushFinish
)

// Writer is a streaming DEFLATE encoder. The zero value is not usable; build
// one with NewWriter.
type Writer struct {
	state *encoderState
	opts  *CompressionOptions
	closed bool
}

// NewWriter creates a DEFLATE encoder writing its compressed bitstream to
// sink. A nil opts selects DefaultOptions. A nil logger disables diagnostics.
func NewWriter(sink io.Writer, opts *CompressionOptions, logger *logrus.Logger) *Writer {
	if opts == nil {
		opts = DefaultOptions()
	}
	w := &Writer{
		state: newEncoderState(sink, opts, noChecksum{}, logHook{logger: logger}),
		opts:  opts,
	}
	runtime.SetFinalizer(w, finalizeWriter)
	return w
}

// finalizeWriter approximates the source library's drop-time flush: a
// Writer that goes out of scope without an explicit Finish still gets its
// buffered state pushed out on GC, best-effort (errors are unobservable
// here, same as any other finalizer).
func finalizeWriter(w *Writer) {
	if !w.closed {
		_ = w.Finish()
	}
}

// Write feeds data into the encoder. It tokenizes and emits blocks as the
// sliding window fills, but may buffer up to two full windows plus the
// lookahead before anything appears on the sink.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	w.state.checksum.write(p)

	data := p
	for {
		rest := w.state.buf.addData(data)
		if err := w.state.processAvailable(false); err != nil {
			return 0, err
		}
		if rest == nil {
			break
		}
		var err error
		data, err = w.state.slideBuffer(rest)
		if err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// Flush pushes buffered data out according to mode. FlushNone is a no-op;
// FlushSync emits everything as non-final blocks plus a sync marker;
// FlushFinish closes the stream (see Finish).
func (w *Writer) Flush(mode FlushMode) error {
	if w.closed {
		return ErrClosed
	}
	switch mode {
	case FlushNone:
		return nil
	case FlushSync:
		if err := w.state.processAvailable(true); err != nil {
			return err
		}
		if w.state.hasPendingBlock() {
			if err := w.state.emitBlock(false); err != nil {
				return err
			}
		}
		writeStoredBlock(w.state.bw, nil, false)
		return w.state.bw.flushTo(w.state.sink)
	case FlushFinish:
		return w.Finish()
	}
	return nil
}

// Finish processes all remaining buffered input, emits the final block, and
// marks the writer closed. Further writes return ErrClosed. Safe to call
// more than once.
func (w *Writer) Finish() error {
	if w.closed {
		return nil
	}
	if err := w.state.processAvailable(true); err != nil {
		return err
	}
	if err := w.state.emitBlock(true); err != nil {
		return err
	}
	w.state.bw.finalize()
	if err := w.state.bw.flushTo(w.state.sink); err != nil {
		return err
	}
	w.closed = true
	runtime.SetFinalizer(w, nil)
	return nil
}

// Reset discards any buffered state and rebinds the writer to a new sink,
// returning the previous one. Equivalent to constructing a fresh Writer with
// the same options, without reallocating the window buffer or hash table.
func (w *Writer) Reset(sink io.Writer) io.Writer {
	old := w.state.sink
	w.state.reset(sink)
	w.closed = false
	runtime.SetFinalizer(w, nil) // clear any finalizer still set by an unfinished stream
	runtime.SetFinalizer(w, finalizeWriter)
	return old
}
