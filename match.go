// SPDX-License-Identifier: MIT

package deflate

// MatchingType selects the matching policy the LZ77 stage uses once it has
// found a candidate match.
type MatchingType int

const (
	// Greedy emits the first match found without checking whether the next
	// position has a longer one.
	Greedy MatchingType = iota
	// Lazy re-runs the search one position ahead before committing, and
	// defers to a literal if the next position yields a strictly longer
	// match.
	Lazy
)

// matcher runs the LZ77 longest-match search and block tokenisation loop
// over one inputBuffer/hashTable pair.
type matcher struct {
	opts *CompressionOptions
}

func newMatcher(opts *CompressionOptions) *matcher {
	return &matcher{opts: opts}
}

// longestMatch searches for the best match at position p (an index into
// buf, already absolute), given the previous candidate's length prevLen, per
// the chain-walk search described by the hard-part of this package. end is
// the number of valid bytes in buf (the lookahead limit). p must already
// have been inserted into ht (ht.prevAt(p) is read as the chain's entry
// point, i.e. the position that headed p's chain just before p did).
func (m *matcher) longestMatch(buf []byte, ht *hashTable, p int, end int, prevLen int) (length, distance int) {
	if p == 0 || prevLen >= maxMatch || p+prevLen >= end {
		return 2, 0
	}

	limit := 0
	if p > windowSize {
		limit = p - windowSize
	}

	bestLen := prevLen
	bestPos := -1

	node := int(ht.prevAt(uint32(p)))
	maxLen := end - p
	if maxLen > maxMatch {
		maxLen = maxMatch
	}

	checks := m.opts.MaxHashChecks
	if checks == 0 {
		checks = 1
	}

	prevNode := p
	for chain := 0; chain < int(checks); chain++ {
		if node == 0 && chain > 0 {
			break
		}
		if node < limit {
			break
		}
		if node >= prevNode {
			break // chain must strictly decrease in position; guards against cycles
		}

		if bestLen < maxLen &&
			buf[node+bestLen] == buf[p+bestLen] &&
			(bestLen == 0 || buf[node+bestLen-1] == buf[p+bestLen-1]) {

			l := 0
			for l < maxLen && buf[node+l] == buf[p+l] {
				l++
			}
			if l > bestLen {
				bestLen = l
				bestPos = node
				if l >= maxLen {
					break
				}
			}
		}

		prevNode = node
		node = int(ht.prevAt(uint32(node)))
	}

	if bestLen <= prevLen || bestPos < 0 {
		return 2, 0
	}
	return bestLen, p - bestPos
}

// runLength extends a run comparing buf[p:] against buf[p-1:], used by the
// RLE-only fast path (distance always 1).
func runLength(buf []byte, p, end int) int {
	if p == 0 {
		return 0
	}
	maxLen := end - p
	if maxLen > maxMatch {
		maxLen = maxMatch
	}
	l := 0
	for l < maxLen && buf[p-1+l] == buf[p+l] {
		l++
	}
	return l
}

// tokenizeRLE implements the RLE-only fast path: no hash chain is
// consulted; each position is only ever compared against position-1.
func (m *matcher) tokenizeRLE(buf []byte, start, end int, t *tokenBuffer) (nextStart int, full bool) {
	p := start
	for p < end {
		length := runLength(buf, p, end)
		if length < minMatch {
			if t.writeLiteral(buf[p]) {
				return p + 1, true
			}
			p++
			continue
		}
		if t.writeLengthDistance(uint16(length), 1) {
			return p + length, true
		}
		p += length
	}
	return p, false
}

// tokenize runs the full chained-hash search (greedy or lazy) over
// buf[start:end], inserting every visited position into ht, emitting
// literals and length/distance tokens into t. It returns the position
// reached and whether the token buffer filled up before reaching end.
func (m *matcher) tokenize(buf []byte, ht *hashTable, start, end int, t *tokenBuffer) (nextStart int, full bool) {
	if m.opts.MaxHashChecks == 0 {
		return m.tokenizeRLE(buf, start, end, t)
	}

	// nextInsert tracks the next position that has not yet been folded into
	// the hash chain. Every position must be inserted before it is ever used
	// as a search origin (longestMatch reads prevAt(p), which is only
	// meaningful once insert(p) has run for that p) or as a chain entry for
	// a later position's search.
	nextInsert := start
	ensureInserted := func(upTo int) {
		for nextInsert <= upTo {
			if nextInsert+2 < len(buf) {
				ht.insert(uint32(nextInsert), buf[nextInsert+2])
			}
			nextInsert++
		}
	}

	p := start
	for p < end {
		ensureInserted(p)
		length, distance := m.longestMatch(buf, ht, p, end, 0)

		if m.opts.MatchingType == Lazy && length >= minMatch && int(length) < int(m.opts.LazyIfLessThan) && p+1 < end {
			ensureInserted(p + 1)
			nextLength, _ := m.longestMatch(buf, ht, p+1, end, length)
			if nextLength > length {
				// Defer: emit a literal now, the next iteration re-finds the
				// longer match at p+1 (already inserted above).
				if t.writeLiteral(buf[p]) {
					return p + 1, true
				}
				p++
				continue
			}
		}

		if length < minMatch {
			if t.writeLiteral(buf[p]) {
				return p + 1, true
			}
			p++
			continue
		}

		if t.writeLengthDistance(uint16(length), uint16(distance)) {
			ensureInserted(p + length - 1)
			return p + length, true
		}
		ensureInserted(p + length - 1)
		p += length
	}
	return p, false
}
