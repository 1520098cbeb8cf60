// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package gdelta

import (
	"bytes"
	"testing"
)

func FuzzEncodeDecodeRoundTrip(f *testing.F) {
	f.Add([]byte(""), []byte(""))
	f.Add([]byte("hello"), []byte("hello, world"))
	f.Add([]byte("hello, world"), []byte(""))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), bytes.Repeat([]byte{0x00}, 1024))
	f.Add([]byte("the quick brown fox"), []byte("the slow brown dog"))

	f.Fuzz(func(t *testing.T, base, newData []byte) {
		if len(base) > 1<<16 {
			base = base[:1<<16]
		}
		if len(newData) > 1<<16 {
			newData = newData[:1<<16]
		}

		delta, err := Encode(newData, base)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		got, err := Decode(delta, base)
		if err != nil {
			t.Fatalf("Decode failed on encoder's own output: %v", err)
		}
		if !bytes.Equal(got, newData) {
			t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(got), len(newData))
		}
	})
}

// FuzzDecodeNeverPanics feeds arbitrary bytes to Decode; it must return an
// error for malformed input, never panic.
func FuzzDecodeNeverPanics(f *testing.F) {
	f.Add([]byte("GDLT"), []byte("base"))
	f.Add([]byte{}, []byte{})
	f.Add([]byte{'G', 'D', 'L', 'T', 1, 0, 0, 0, 0xff}, []byte("base"))

	f.Fuzz(func(t *testing.T, delta, base []byte) {
		if len(delta) > 1<<16 {
			delta = delta[:1<<16]
		}
		if len(base) > 1<<16 {
			base = base[:1<<16]
		}

		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Decode panicked: %v", r)
			}
		}()
		_, _ = Decode(delta, base)
	})
}
