// SPDX-License-Identifier: MIT

package deflate

// codeLengthOrder is the fixed permutation RFC 1951 §3.2.7 uses for the
// code-length alphabet in a dynamic block header.
var codeLengthOrder = [numCodeLengthCodes]uint8{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

const (
	rleCopyPrevious   = 16
	rleRepeatZero3    = 17
	rleRepeatZero7    = 18
	rleMinRepeat      = 3
	rleCopyMax        = 6  // a non-zero value may repeat up to 6 times beyond its first emission
	rleZeroShortMax   = 10 // symbol 17 covers zero-runs of 3..10
	rleZeroLongMax    = 138
)

// rleSymbol is one emitted entry of the length-table RLE encoding: either a
// literal code-length value (0..15) or one of the three repeat codes with
// its extra-bit payload.
type rleSymbol struct {
	code  uint8 // 0..18
	extra uint16
}

// encodeLengthsRLE run-length-encodes a concatenated literal/length +
// distance code-length table using the three repeat symbols defined in RFC
// 1951 §3.2.7, and accumulates frequencies of the 19-symbol alphabet used to
// build the code-length Huffman table.
func encodeLengthsRLE(lengths []uint8) (symbols []rleSymbol, freq [numCodeLengthCodes]uint16) {
	i := 0
	for i < len(lengths) {
		value := lengths[i]
		runStart := i
		i++
		for i < len(lengths) && lengths[i] == value {
			i++
		}
		run := i - runStart

		if value == 0 {
			for run > 0 {
				switch {
				case run >= 11:
					n := run
					if n > rleZeroLongMax {
						n = rleZeroLongMax
					}
					symbols = append(symbols, rleSymbol{code: rleRepeatZero7, extra: uint16(n - 11)})
					freq[rleRepeatZero7]++
					run -= n
				case run >= 3:
					n := run
					if n > rleZeroShortMax {
						n = rleZeroShortMax
					}
					symbols = append(symbols, rleSymbol{code: rleRepeatZero3, extra: uint16(n - 3)})
					freq[rleRepeatZero3]++
					run -= n
				default:
					for ; run > 0; run-- {
						symbols = append(symbols, rleSymbol{code: 0})
						freq[0]++
					}
				}
			}
			continue
		}

		// First occurrence is always emitted as a literal value.
		symbols = append(symbols, rleSymbol{code: value})
		freq[value]++
		run--

		for run > 0 {
			if run < rleMinRepeat {
				for ; run > 0; run-- {
					symbols = append(symbols, rleSymbol{code: value})
					freq[value]++
				}
				break
			}
			n := run
			if n > rleCopyMax {
				n = rleCopyMax
			}
			symbols = append(symbols, rleSymbol{code: rleCopyPrevious, extra: uint16(n - 3)})
			freq[rleCopyPrevious]++
			run -= n
		}
	}
	return
}
