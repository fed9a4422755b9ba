// SPDX-License-Identifier: MIT

package deflate

import "golang.org/x/exp/slices"

// huffmanLeaf is one non-zero-frequency symbol going into length generation.
// The weight field does double duty: during phase 1 it holds a combined
// subtree weight, and during phase 2 it is overwritten with a parent index
// (phase 1) and then a depth (phase 2), per the in-place Moffat/Katajainen
// algorithm this is ported from.
type huffmanLeaf struct {
	weight uint32
	symbol uint16
}

// huffmanLengthsFromFrequency computes a length-limited canonical Huffman
// length table for the given frequency array, using the in-place
// (non-length-limited) Moffat/Katajainen construction followed by post-hoc
// length-limit enforcement. maxLen is 15 for the data alphabets and 7 for
// the code-length alphabet.
func huffmanLengthsFromFrequency(frequencies []uint16, maxLen uint8) []uint8 {
	lengths := make([]uint8, len(frequencies))

	leaves := make([]huffmanLeaf, 0, len(frequencies))
	for sym, f := range frequencies {
		if f != 0 {
			leaves = append(leaves, huffmanLeaf{weight: uint32(f), symbol: uint16(sym)})
		}
	}

	if len(leaves) < 2 {
		if len(leaves) == 1 {
			lengths[leaves[0].symbol] = 1
		}
		return lengths
	}

	slices.SortStableFunc(leaves, func(a, b huffmanLeaf) int {
		if a.weight < b.weight {
			return -1
		}
		if a.weight > b.weight {
			return 1
		}
		return 0
	})

	step1(leaves)
	step2(leaves)

	var numCodes [numCodesLength]uint16
	for _, l := range leaves {
		numCodes[l.weight]++ // weight now holds each leaf's depth
	}

	enforceMaxCodeLengths(&numCodes, len(leaves), int(maxLen))

	// Emit lengths: the lowest-frequency symbols receive the longest codes.
	// Leaves are sorted ascending by weight, so walk numCodes from maxLen
	// down to 1 while consuming leaves from the front.
	idx := 0
	for length := maxLen; length >= 1; length-- {
		n := numCodes[length]
		for ; n > 0; n-- {
			lengths[leaves[idx].symbol] = length
			idx++
		}
	}

	return lengths
}

// step1 is phase 1 of the in-place algorithm: repeatedly combine the two
// smallest available weights (each either an unused leaf or an
// already-combined internal node) into a new internal node, overwriting the
// leaves slice in place. Afterwards leaves[i].weight for i < len(leaves)-2
// holds the index of internal node i's parent, leaves[len(leaves)-2].weight
// holds the root's total weight, and the last entry is left untouched.
func step1(leaves []huffmanLeaf) {
	n := len(leaves)
	root := 0
	leaf := 2

	leaves[0].weight += leaves[1].weight

	for next := 1; next < n-1; next++ {
		if leaf >= n || leaves[root].weight < leaves[leaf].weight {
			leaves[next].weight = leaves[root].weight
			leaves[root].weight = uint32(next)
			root++
		} else {
			leaves[next].weight = leaves[leaf].weight
			leaf++
		}

		if leaf >= n || (root < next && leaves[root].weight < leaves[leaf].weight) {
			leaves[next].weight += leaves[root].weight
			leaves[root].weight = uint32(next)
			root++
		} else {
			leaves[next].weight += leaves[leaf].weight
			leaf++
		}
	}
}

// step2 is phase 2: turn the parent-pointer encoding left behind by step1
// into per-leaf depths.
func step2(leaves []huffmanLeaf) {
	n := len(leaves)
	if n < 2 {
		return
	}

	leaves[n-2].weight = 0
	for next := n - 3; next >= 0; next-- {
		leaves[next].weight = leaves[leaves[next].weight].weight + 1
	}

	available := 1
	used := 0
	depth := 0
	root := n - 2
	next := n - 1

	for available > 0 {
		for root >= 0 && int(leaves[root].weight) == depth {
			used++
			root--
		}
		for available > used {
			leaves[next].weight = uint32(depth)
			next--
			available--
		}
		available = 2 * used
		depth++
		used = 0
	}
}

// numCodesLength is one more than the maximum possible depth (15 for data
// alphabets bounded well under this) so numCodes can be indexed directly by
// depth without an off-by-one.
const numCodesLength = 33

// enforceMaxCodeLengths restores the Kraft equality after clamping any
// depth greater than maxLen down to maxLen. Ported from the miniz/zlib
// "enforce_max_code_lengths" approach: collapse the overflow into the max
// bucket, then repeatedly drop one code at the max length and split one code
// of the longest used shorter length into two codes one bit longer, until
// the Kraft sum matches exactly.
func enforceMaxCodeLengths(numCodes *[numCodesLength]uint16, numUsed int, maxLen int) {
	if numUsed <= 1 {
		return
	}

	for i := maxLen + 1; i < numCodesLength; i++ {
		numCodes[maxLen] += numCodes[i]
		numCodes[i] = 0
	}

	var total uint32
	for i := maxLen; i >= 1; i-- {
		total += uint32(numCodes[i]) << uint(maxLen-i)
	}

	target := uint32(1) << uint(maxLen)
	for total != target {
		numCodes[maxLen]--
		for i := maxLen - 1; i >= 1; i-- {
			if numCodes[i] != 0 {
				numCodes[i]--
				numCodes[i+1] += 2
				break
			}
		}
		total--
	}
}
