// SPDX-License-Identifier: MIT

package deflate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeLengthsRLE_ShortZeroRun(t *testing.T) {
	lengths := []uint8{3, 0, 0, 5}
	symbols, freq := encodeLengthsRLE(lengths)

	// A run of exactly 2 zeros is below rleMinRepeat for symbol 17 (which
	// needs >= 3), so it must be emitted as two literal zeros instead.
	expect := []rleSymbol{
		{code: 3},
		{code: 0},
		{code: 0},
		{code: 5},
	}
	assert.Equal(t, expect, symbols)
	assert.Equal(t, uint16(1), freq[3])
	assert.Equal(t, uint16(2), freq[0])
	assert.Equal(t, uint16(1), freq[5])
}

func TestEncodeLengthsRLE_LongZeroRun(t *testing.T) {
	lengths := make([]uint8, 12)
	symbols, freq := encodeLengthsRLE(lengths)

	if len(symbols) != 1 || symbols[0].code != rleRepeatZero7 {
		t.Fatalf("expected a single code-18 run, got %+v", symbols)
	}
	if symbols[0].extra != 1 { // 12 - 11
		t.Fatalf("extra = %d, want 1", symbols[0].extra)
	}
	if freq[rleRepeatZero7] != 1 {
		t.Fatalf("freq[18] = %d, want 1", freq[rleRepeatZero7])
	}
}

func TestEncodeLengthsRLE_NonZeroRepeat(t *testing.T) {
	lengths := []uint8{7, 7, 7, 7, 7}
	symbols, freq := encodeLengthsRLE(lengths)

	want := []rleSymbol{
		{code: 7},
		{code: rleCopyPrevious, extra: 1}, // remaining run of 4, capped at 6-3=... 4-3=1
	}
	assert.Equal(t, want, symbols)
	assert.Equal(t, uint16(1), freq[7])
	assert.Equal(t, uint16(1), freq[rleCopyPrevious])
}

func TestEncodeLengthsRLE_NonZeroRepeatSplitsAtCap(t *testing.T) {
	lengths := make([]uint8, 10)
	for i := range lengths {
		lengths[i] = 4
	}
	symbols, _ := encodeLengthsRLE(lengths)

	// First value literal, then runs of up to 6 repeats per code-16 symbol:
	// remaining after the literal is 9, split into 6 + 3.
	want := []rleSymbol{
		{code: 4},
		{code: rleCopyPrevious, extra: 3}, // 6-3
		{code: rleCopyPrevious, extra: 0}, // 3-3
	}
	assert.Equal(t, want, symbols)
}

func TestEncodeLengthsRLE_Empty(t *testing.T) {
	symbols, freq := encodeLengthsRLE(nil)
	assert.Empty(t, symbols)
	for _, f := range freq {
		assert.Equal(t, uint16(0), f)
	}
}
