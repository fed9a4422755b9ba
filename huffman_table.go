// SPDX-License-Identifier: MIT

package deflate

// Fixed (RFC 1951 §3.2.6) code lengths for the literal/length alphabet: codes
// 0-143 get 8 bits, 144-255 get 9 bits, 256-279 get 7 bits, 280-287 get 8
// bits.
var fixedLiteralLengths [numLiteralLengthSlots]uint8

// Fixed code lengths for the distance alphabet: all 5 bits.
var fixedDistanceLengths [numDistanceSlots]uint8

func init() {
	for i := 0; i <= 143; i++ {
		fixedLiteralLengths[i] = 8
	}
	for i := 144; i <= 255; i++ {
		fixedLiteralLengths[i] = 9
	}
	for i := 256; i <= 279; i++ {
		fixedLiteralLengths[i] = 7
	}
	for i := 280; i <= 287; i++ {
		fixedLiteralLengths[i] = 8
	}
	for i := range fixedDistanceLengths {
		fixedDistanceLengths[i] = 5
	}
	fixedHuffmanTable = buildFixedTable()
}

// lengthExtraBits and lengthBase are indexed by (code - 257), code in
// [257,285].
var lengthExtraBits = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1,
	2, 2, 2, 2,
	3, 3, 3, 3,
	4, 4, 4, 4,
	5, 5, 5, 5,
	0,
}

var lengthBase = [29]uint16{
	3, 4, 5, 6, 7, 8, 9, 10,
	11, 13, 15, 17,
	19, 23, 27, 31,
	35, 43, 51, 59,
	67, 83, 99, 115,
	131, 163, 195, 227,
	258,
}

// distanceExtraBits and distanceBase are indexed directly by distance code
// (0..29).
var distanceExtraBits = [numDistanceCodes]uint8{
	0, 0, 0, 0,
	1, 1,
	2, 2,
	3, 3,
	4, 4,
	5, 5,
	6, 6,
	7, 7,
	8, 8,
	9, 9,
	10, 10,
	11, 11,
	12, 12,
	13, 13,
}

var distanceBase = [numDistanceCodes]uint16{
	1, 2, 3, 4,
	5, 7,
	9, 13,
	17, 25,
	33, 49,
	65, 97,
	129, 193,
	257, 385,
	513, 769,
	1025, 1537,
	2049, 3073,
	4097, 6145,
	8193, 12289,
	16385, 24577,
}

// lengthCodeLUT maps a match length (3..258) to its length code (257..285).
var lengthCodeLUT [maxMatch + 1]uint16

// distanceCodeLUT maps distance-1 (for distance 1..256) directly, and
// distanceHighLUT maps (distance-1)>>7 (for distance 257..32768) to a
// distance code, matching the two-table approach RFC encoders commonly use
// to avoid a linear scan for every token.
var distanceCodeLUT [256]uint16
var distanceHighLUT [256]uint16

func init() {
	code := 257
	for length := 3; length <= maxMatch; length++ {
		for code < 285 && int(lengthBase[code-257])+(1<<lengthExtraBits[code-257]) <= length {
			code++
		}
		lengthCodeLUT[length] = uint16(code)
	}
	// Code 284's extra bits only reach 257; 258 has code 285 to itself.
	lengthCodeLUT[maxMatch] = 285

	idx := 0
	for d := 1; d <= 256; d++ {
		for idx < numDistanceCodes-1 && int(distanceBase[idx+1]) <= d {
			idx++
		}
		distanceCodeLUT[d-1] = uint16(idx)
	}
	idx = 0
	for hi := 0; hi < 256; hi++ {
		d := (hi << 7) + 1
		for idx < numDistanceCodes-1 && int(distanceBase[idx+1]) <= d {
			idx++
		}
		distanceHighLUT[hi] = uint16(idx)
	}
}

// lengthCodeAndExtra returns the length code, its extra-bit count, and the
// extra-bit value for a match length in [3,258].
func lengthCodeAndExtra(length uint16) (code uint16, extraBits uint, extraValue uint16) {
	code = lengthCodeLUT[length]
	extraBits = uint(lengthExtraBits[code-257])
	extraValue = length - lengthBase[code-257]
	return
}

// distanceCodeAndExtra returns the distance code, its extra-bit count, and
// the extra-bit value for a distance in [1,32768].
func distanceCodeAndExtra(distance uint16) (code uint16, extraBits uint, extraValue uint16) {
	var idx uint16
	if distance <= 256 {
		idx = distanceCodeLUT[distance-1]
	} else {
		idx = distanceHighLUT[(distance-1)>>7]
	}
	return idx, uint(distanceExtraBits[idx]), distance - distanceBase[idx]
}

// huffmanCode is a canonical code assigned to one symbol: the bit pattern
// (already bit-reversed, ready for direct LSB emission) and its length.
type huffmanCode struct {
	code   uint16
	length uint8
}

// huffmanTable holds the literal/length and distance code tables for one
// block.
type huffmanTable struct {
	litLen [numLiteralLengthSlots]huffmanCode
	dist   [numDistanceSlots]huffmanCode
}

// buildFixedTable constructs the RFC 1951 static Huffman table (§3.2.6),
// used for BTYPE=01 blocks.
func buildFixedTable() *huffmanTable {
	t := &huffmanTable{}
	t.updateFromLengths(fixedLiteralLengths[:], fixedDistanceLengths[:])
	return t
}

// updateFromLengths performs canonical code construction (RFC 1951 §3.2.2):
// for each code length in increasing order, assign consecutive codes to the
// symbols of that length, in symbol order, then bit-reverse each assigned
// code so it can be emitted LSB-first.
func (t *huffmanTable) updateFromLengths(litLen, dist []uint8) error {
	if err := createCodesInPlace(t.litLen[:], litLen); err != nil {
		return err
	}
	if err := createCodesInPlace(t.dist[:], dist); err != nil {
		return err
	}
	return nil
}

func createCodesInPlace(table []huffmanCode, lengths []uint8) error {
	var blCount [maxCodeLength + 1]uint16
	maxLen := 0
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		if int(l) > maxCodeLength {
			return ErrInternal
		}
		blCount[l]++
		if int(l) > maxLen {
			maxLen = int(l)
		}
	}

	var nextCode [maxCodeLength + 2]uint16
	code := uint16(0)
	for bits := 1; bits <= maxLen; bits++ {
		code = (code + blCount[bits-1]) << 1
		nextCode[bits] = code
	}

	for sym, l := range lengths {
		if l == 0 {
			table[sym] = huffmanCode{}
			continue
		}
		c := nextCode[l]
		nextCode[l]++
		table[sym] = huffmanCode{code: reverseBits(c, uint(l)), length: l}
	}
	return nil
}
