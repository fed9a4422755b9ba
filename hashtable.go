// SPDX-License-Identifier: MIT

package deflate

// hashTable is the chained hash table used by the LZ77 match finder to find
// candidate match positions for the most recent 3 bytes seen. Arrays are
// indexed by position modulo the window size (only windowSize many chain
// slots exist), but the values they hold are absolute positions into the
// current input buffer, so a chain walk can compute distance = p - match
// directly without re-deriving it from a masked index. After a slide, every
// stored value is shifted down by the window size (saturating to zero) so
// chains never point past the legal distance window.
type hashTable struct {
	head [hashSize]uint32   // hash -> most recent absolute position with that hash, or 0
	prev [windowSize]uint32 // position (mod W) -> previous absolute position with same hash

	currentHash uint32
}

func newHashTable() *hashTable {
	return &hashTable{}
}

// updateHash folds one more byte into the running 3-byte hash.
func updateHash(h uint32, b byte) uint32 {
	return ((h << hashShift) ^ uint32(b)) & hashMask
}

// insert records absolute position p (whose 3-byte key is data[p],
// data[p+1], data[p+2]) into the chain for the hash computed over those
// bytes, and advances the running hash with the newly-available third byte
// (data[p+2]).
func (t *hashTable) insert(p uint32, thirdByte byte) {
	t.currentHash = updateHash(t.currentHash, thirdByte)
	slot := p & windowMask
	t.prev[slot] = t.head[t.currentHash]
	t.head[t.currentHash] = p
}

// resetHash reseeds the running hash from the first two bytes of a fresh key
// (used when starting a new stream, before the next insert folds in the
// third byte).
func (t *hashTable) resetHash(b0, b1 byte) {
	t.currentHash = updateHash(updateHash(0, b0), b1)
}

// headAt returns the most recent absolute position sharing hash h, or 0 if
// none.
func (t *hashTable) headAt(h uint32) uint32 {
	return t.head[h]
}

// prevAt returns the previous absolute position in the same chain as the
// entry at slot p (mod W).
func (t *hashTable) prevAt(p uint32) uint32 {
	return t.prev[p&windowMask]
}

// slide subtracts the window size from every stored position, saturating to
// zero, after the caller has slid its own input buffer by the window size.
func (t *hashTable) slide() {
	for i := range t.head {
		t.head[i] = slideValue(t.head[i])
	}
	for i := range t.prev {
		t.prev[i] = slideValue(t.prev[i])
	}
}

func slideValue(v uint32) uint32 {
	if v < windowSize {
		return 0
	}
	return v - windowSize
}
