// SPDX-License-Identifier: MIT

package deflate

import "testing"

func TestHashTable_InsertAndChain(t *testing.T) {
	data := []byte("abcabcabc")
	ht := newHashTable()
	ht.resetHash(data[0], data[1])

	for p := 0; p+2 < len(data); p++ {
		ht.insert(uint32(p), data[p+2])
	}

	h := ht.currentHash
	head := ht.headAt(h)
	if head != 6 {
		t.Fatalf("head of final hash = %d, want 6 (last position with key %q)", head, data[6:9])
	}
	prev := ht.prevAt(head)
	if prev != 3 {
		t.Fatalf("prev of position 6 = %d, want 3", prev)
	}
	prev2 := ht.prevAt(prev)
	if prev2 != 0 {
		t.Fatalf("prev of position 3 = %d, want 0", prev2)
	}
}

func TestHashTable_Slide(t *testing.T) {
	ht := newHashTable()
	ht.head[5] = windowSize + 100
	ht.prev[10] = 50 // below windowSize: must saturate to 0
	ht.slide()

	if ht.head[5] != 100 {
		t.Fatalf("head[5] = %d, want 100", ht.head[5])
	}
	if ht.prev[10] != 0 {
		t.Fatalf("prev[10] = %d, want 0 (saturated)", ht.prev[10])
	}
}

func TestUpdateHash_Deterministic(t *testing.T) {
	h1 := updateHash(updateHash(0, 'a'), 'b')
	h2 := updateHash(updateHash(0, 'a'), 'b')
	if h1 != h2 {
		t.Fatalf("updateHash is not deterministic: %d != %d", h1, h2)
	}
	if h1 > hashMask {
		t.Fatalf("hash %d exceeds hashMask %d", h1, hashMask)
	}
}
