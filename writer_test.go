// SPDX-License-Identifier: MIT

package deflate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_RoundTripAcrossPresets(t *testing.T) {
	inputs := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"short", []byte("hello, deflate")},
		{"repeated", bytes.Repeat([]byte("abcabcabcabc"), 500)},
		{"long-run", bytes.Repeat([]byte{0xAA}, 70000)},
		{"zero-window-plus-tail", append(bytes.Repeat([]byte{0}, 32768), []byte{22, 5, 2, 55, 11, 12}...)},
		{"past-one-window", append(bytes.Repeat([]byte{22}, 32768), []byte{5, 2, 55, 11, 12}...)},
	}
	presets := map[string]*CompressionOptions{
		"fast":    FastOptions(),
		"default": DefaultOptions(),
		"high":    HighOptions(),
	}

	for _, in := range inputs {
		for presetName, opts := range presets {
			t.Run(in.name+"/"+presetName, func(t *testing.T) {
				var buf bytes.Buffer
				w := NewWriter(&buf, opts, nil)
				if _, err := w.Write(in.data); err != nil {
					t.Fatalf("Write: %v", err)
				}
				if err := w.Finish(); err != nil {
					t.Fatalf("Finish: %v", err)
				}

				out, err := inflateRaw(buf.Bytes())
				if err != nil {
					t.Fatalf("inflate: %v", err)
				}
				assert.Equal(t, in.data, out)
			})
		}
	}
}

func TestWriter_ChunkedWritesAreEquivalent(t *testing.T) {
	data := bytes.Repeat([]byte("streaming deflate test data, chunked arbitrarily. "), 1000)

	var whole bytes.Buffer
	w1 := NewWriter(&whole, DefaultOptions(), nil)
	w1.Write(data)
	w1.Finish()

	var chunked bytes.Buffer
	w2 := NewWriter(&chunked, DefaultOptions(), nil)
	for i := 0; i < len(data); i += 7 {
		end := i + 7
		if end > len(data) {
			end = len(data)
		}
		if _, err := w2.Write(data[i:end]); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	w2.Finish()

	out1, err := inflateRaw(whole.Bytes())
	if err != nil {
		t.Fatalf("inflate whole: %v", err)
	}
	out2, err := inflateRaw(chunked.Bytes())
	if err != nil {
		t.Fatalf("inflate chunked: %v", err)
	}
	assert.Equal(t, out1, out2)
	assert.Equal(t, data, out2)
}

func TestWriter_SyncFlushProducesMarkerAndResumes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, DefaultOptions(), nil)
	if _, err := w.Write([]byte("first part")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Flush(FlushSync); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	afterFirstFlush := append([]byte(nil), buf.Bytes()...)
	if !bytes.Contains(afterFirstFlush, []byte{0x00, 0x00, 0xFF, 0xFF}) {
		t.Fatalf("sync flush output missing 00 00 FF FF marker: % x", afterFirstFlush)
	}

	if _, err := w.Write([]byte("second part")); err != nil {
		t.Fatalf("Write after sync flush: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	out, err := inflateRaw(buf.Bytes())
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	assert.Equal(t, []byte("first partsecond part"), out)
}

func TestWriter_WriteAfterFinishFails(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil, nil)
	w.Write([]byte("x"))
	if err := w.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if _, err := w.Write([]byte("y")); err != ErrClosed {
		t.Fatalf("Write after Finish: err = %v, want ErrClosed", err)
	}
}

func TestWriter_Reset(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	w := NewWriter(&buf1, DefaultOptions(), nil)
	w.Write([]byte("stream one"))
	w.Finish()

	old := w.Reset(&buf2)
	if old != &buf1 {
		t.Fatal("Reset did not return the previous sink")
	}
	w.Write([]byte("stream two"))
	w.Finish()

	out1, err := inflateRaw(buf1.Bytes())
	if err != nil {
		t.Fatalf("inflate buf1: %v", err)
	}
	out2, err := inflateRaw(buf2.Bytes())
	if err != nil {
		t.Fatalf("inflate buf2: %v", err)
	}
	assert.Equal(t, []byte("stream one"), out1)
	assert.Equal(t, []byte("stream two"), out2)
}

func TestWriter_ForceStoredAndForceFixed(t *testing.T) {
	data := bytes.Repeat([]byte("repeat me please repeat me please "), 50)

	for _, special := range []SpecialMode{ForceStored, ForceFixed} {
		opts := DefaultOptions()
		opts.Special = special
		var buf bytes.Buffer
		w := NewWriter(&buf, opts, nil)
		w.Write(data)
		if err := w.Finish(); err != nil {
			t.Fatalf("Finish (special=%v): %v", special, err)
		}
		out, err := inflateRaw(buf.Bytes())
		if err != nil {
			t.Fatalf("inflate (special=%v): %v", special, err)
		}
		assert.Equal(t, data, out)
	}
}
