// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package gdelta

import "encoding/binary"

// Match primitives (§4.3): common-prefix length, common-suffix length, and
// bidirectional match extension. Each has a wide-word fast path -- eight
// bytes compared per step via a single little-endian load, the idiomatic Go
// stand-in for the SIMD compare tiers the reference implementation gates
// behind a "simd" build feature, since nothing in this module's dependency
// surface wires in real SIMD intrinsics. The tail (and the block containing
// the first mismatch) always falls back to a byte-wise compare, so the
// result is identical to the pure byte-wise reference on every input.
const wideWord = 8

// matchForwardLen returns the largest k such that a[0:k] == b[0:k].
func matchForwardLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := 0
	for i+wideWord <= n {
		if binary.LittleEndian.Uint64(a[i:]) != binary.LittleEndian.Uint64(b[i:]) {
			break
		}
		i += wideWord
	}

	for i < n && a[i] == b[i] {
		i++
	}

	return i
}

// matchBackwardLen returns the largest k such that a[len(a)-k:] == b[len(b)-k:].
func matchBackwardLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := 0
	for i+wideWord <= n {
		aOff := len(a) - i - wideWord
		bOff := len(b) - i - wideWord
		if binary.LittleEndian.Uint64(a[aOff:]) != binary.LittleEndian.Uint64(b[bOff:]) {
			break
		}
		i += wideWord
	}

	for i < n && a[len(a)-i-1] == b[len(b)-i-1] {
		i++
	}

	return i
}

// commonPrefixLen returns the length of the common prefix of a and b.
func commonPrefixLen(a, b []byte) int {
	return matchForwardLen(a, b)
}

// commonSuffixLen returns the length of the common suffix of a and b.
func commonSuffixLen(a, b []byte) int {
	return matchBackwardLen(a, b)
}

// extendMatch extends a known-equal pair of positions (newPos in newData,
// basePos in baseData) forward until mismatch or a buffer limit, and --
// since reverse matching is enabled -- backward until mismatch, a buffer
// limit, or backLimit (the earliest position in newData the caller will
// allow the match to reclaim; this is the start of the pending literal
// run, so extension never crosses a previously-emitted instruction
// boundary). Returns (backward_len, forward_len).
func extendMatch(newData, baseData []byte, newPos, basePos, backLimit, newLimit, baseLimit int) (back, fwd int) {
	fwd = matchForwardLen(newData[newPos:newLimit], baseData[basePos:baseLimit])

	maxBack := newPos - backLimit
	if basePos < maxBack {
		maxBack = basePos
	}
	if maxBack > 0 {
		back = matchBackwardLen(newData[newPos-maxBack:newPos], baseData[basePos-maxBack:basePos])
	}

	return back, fwd
}
