// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package gdelta

// Unsigned base-128 little-endian varint codec: low 7 bits per byte, high
// bit set on every byte but the last. Ported in spirit from the corpus's
// wire-format varint helpers, tightened to the maxVarintWidth bound §4.1
// requires.

// appendVarint appends the varint encoding of v to buf and returns the
// extended slice. It always produces the shortest encoding.
func appendVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// varintSize returns the number of bytes appendVarint would write for v.
func varintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// readVarint decodes a varint from the front of buf, returning the value and
// the number of bytes consumed. Fails with ErrTruncated if buf runs out
// before a terminating byte, and with ErrOverflow if decoding would consume
// more than maxVarintWidth bytes or the accumulated value would exceed
// 2^64-1.
func readVarint(buf []byte) (v uint64, n int, err error) {
	var shift uint

	for i := 0; i < len(buf); i++ {
		if i >= maxVarintWidth {
			return 0, 0, ErrOverflow
		}

		b := buf[i]

		// The 10th byte (index 9) can only contribute the single remaining
		// bit of a 64-bit value; anything else overflows.
		if i == maxVarintWidth-1 {
			if b >= 0x80 {
				return 0, 0, ErrOverflow
			}
			if b > 1 {
				return 0, 0, ErrOverflow
			}
		}

		v |= uint64(b&0x7f) << shift

		if b < 0x80 {
			return v, i + 1, nil
		}

		shift += 7
	}

	return 0, 0, ErrTruncated
}
