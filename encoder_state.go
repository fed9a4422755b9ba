// SPDX-License-Identifier: MIT

package deflate

import "io"

// encoderState ties together every stage of the pipeline (sliding window,
// hash table, matcher, token buffer, bit writer) for one stream. A Writer
// owns exactly one of these; Reset clears it in place.
type encoderState struct {
	buf *inputBuffer
	ht  *hashTable

	matcher *matcher
	tokens  *tokenBuffer
	bw      *bitWriter

	checksum rollingChecksum
	log      logHook
	opts     *CompressionOptions

	sink io.Writer

	pos        int // next unprocessed position in buf
	blockStart int // start of the block currently being accumulated

	seeded bool // resetHash has been called for the current stream
}

func newEncoderState(sink io.Writer, opts *CompressionOptions, checksum rollingChecksum, log logHook) *encoderState {
	es := &encoderState{
		buf:      &inputBuffer{},
		ht:       newHashTable(),
		tokens:   newTokenBuffer(),
		bw:       newBitWriter(),
		checksum: checksum,
		log:      log,
		opts:     opts,
		sink:     sink,
	}
	es.matcher = newMatcher(opts)
	return es
}

func (es *encoderState) reset(sink io.Writer) {
	*es.buf = inputBuffer{}
	*es.ht = hashTable{}
	es.tokens.reset()
	es.bw.reset()
	es.sink = sink
	es.pos = 0
	es.blockStart = 0
	es.seeded = false
}

// seedHash primes the running hash once at least two bytes are available and
// no seeding has happened yet for the current stream. A slide does not
// reseed: the running hash carries on across it.
func (es *encoderState) seedHash() {
	if es.seeded || es.buf.end < 2 {
		return
	}
	data := es.buf.bytes()
	es.ht.resetHash(data[0], data[1])
	es.seeded = true
}

// processAvailable tokenizes everything currently available in the buffer.
// Unless finalFlush is set, it holds back the last maxMatch bytes so a match
// search never runs off the end of data that might still be extended by a
// later Write.
func (es *encoderState) processAvailable(finalFlush bool) error {
	es.seedHash()

	limit := es.buf.end
	if !finalFlush {
		limit -= maxMatch
		if limit < 0 {
			limit = 0
		}
	}

	for es.pos < limit {
		next, full := es.matcher.tokenize(es.buf.bytes(), es.ht, es.pos, limit, es.tokens)
		es.pos = next
		if full {
			if err := es.emitBlock(false); err != nil {
				return err
			}
		}
	}
	return nil
}

// emitBlock chooses a block type for the bytes accumulated since blockStart,
// writes it, and flushes completed bytes to the sink.
func (es *encoderState) emitBlock(final bool) error {
	raw := es.buf.bytes()[es.blockStart:es.pos]

	bt := blockTypeFor(len(raw))
	switch es.opts.Special {
	case ForceFixed:
		bt = blockFixed
	case ForceStored:
		bt = blockStored
	}

	var err error
	switch bt {
	case blockStored:
		writeStoredBlock(es.bw, raw, final)
	case blockFixed:
		err = writeFixedBlock(es.bw, es.tokens.values, final)
	default:
		err = writeDynamicBlock(es.bw, es.tokens, final)
	}
	if err != nil {
		return err
	}

	es.log.blockEmitted(bt, es.tokens.tokenCount(), final)
	es.tokens.reset()
	es.blockStart = es.pos

	return es.bw.flushTo(es.sink)
}

// hasPendingBlock reports whether there is unemitted content (tokens or raw
// bytes) since the last block boundary.
func (es *encoderState) hasPendingBlock() bool {
	return es.tokens.tokenCount() > 0 || es.pos > es.blockStart
}

// slideBuffer flushes the current block, compacts the input buffer, and
// feeds in any data that didn't fit beforehand. It must only be called when
// the buffer is completely full.
//
// The RLE-only fast path (MaxHashChecks == 0) never consults the hash
// table, so there is no chain state that needs to stay in lock-step with
// the buffer; a plain moveDown suffices there and compacts further than a
// fixed one-window slide would. Every other matching mode walks hash
// chains whose stored positions are only valid relative to a slide of
// exactly one window, so those use slide paired with hashTable.slide.
func (es *encoderState) slideBuffer(data []byte) ([]byte, error) {
	if err := es.processAvailable(false); err != nil {
		return nil, err
	}
	if es.hasPendingBlock() {
		if err := es.emitBlock(false); err != nil {
			return nil, err
		}
	}

	var shift int
	var rest []byte
	if es.opts.MaxHashChecks == 0 {
		shift = es.buf.moveDown()
		rest = es.buf.addData(data)
	} else {
		rest = es.buf.slide(data)
		es.ht.slide()
		shift = windowSize
	}

	es.pos -= shift
	if es.pos < 0 {
		es.pos = 0
	}
	es.blockStart -= shift
	if es.blockStart < 0 {
		es.blockStart = 0
	}

	es.log.windowSlid(shift, es.buf.end)
	return rest, nil
}
