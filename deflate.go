// SPDX-License-Identifier: MIT

package deflate

import "bytes"

// Compress returns data encoded as a raw DEFLATE bitstream (RFC 1951, no
// container). A nil opts selects DefaultOptions.
func Compress(data []byte, opts *CompressionOptions) ([]byte, error) {
	var buf bytes.Buffer
	w := NewWriter(&buf, opts, nil)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Finish(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompressZlib returns data encoded as a zlib stream (RFC 1950): a 2-byte
// header, a DEFLATE payload, and an Adler-32 trailer. A nil opts selects
// DefaultOptions.
func CompressZlib(data []byte, opts *CompressionOptions) ([]byte, error) {
	var buf bytes.Buffer
	z := NewZlibWriter(&buf, opts, nil)
	if _, err := z.Write(data); err != nil {
		return nil, err
	}
	if err := z.Finish(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
