// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package gdelta

// baseIndex maps the GEAR fingerprint of a sampled base window to a single
// base offset (§4.4). It is single-slot-per-key by design: a collision (two
// sampled windows whose fingerprints land in the same slot) is resolved by
// keeping the earliest-inserted offset. A slot stores no fingerprint, so
// lookup hands that offset to any probe mapping to the slot; the encoder
// compares the two windows' bytes and treats a mismatch as "no candidate
// here". This keeps the encoder's inner loop
// branch-light, and the earliest-wins tie-break is part of the wire-stable
// behavior -- it affects which candidate the encoder tries first, and
// therefore the exact bytes of the emitted delta.
type baseIndex struct {
	slots []int64 // base offset + 1; 0 means empty
	mask  uint32
}

// buildBaseIndex builds an index over base[start:end), sampling one window
// in every sampleRate consecutive positions.
func buildBaseIndex(base []byte, start, end int) *baseIndex {
	span := end - start
	if span < wordSize {
		return &baseIndex{}
	}

	numSamples := (span-wordSize)/sampleRate + 1
	capacity := nextPow2(int(float64(numSamples)/indexLoadFactor) + 1)
	if capacity < 16 {
		capacity = 16
	}

	idx := &baseIndex{
		slots: make([]int64, capacity),
		mask:  uint32(capacity - 1),
	}

	for i := start; i+wordSize <= end; i += sampleRate {
		f := gearFingerprint(base[i : i+wordSize])
		slot := uint32(f) & idx.mask
		if idx.slots[slot] == 0 {
			idx.slots[slot] = int64(i) + 1
		}
	}

	return idx
}

// lookup returns the base offset recorded in fingerprint f's slot, or
// (0, false) if the slot is empty. The slot may have been claimed by a
// different window whose fingerprint maps to the same slot; lookup does not
// detect that, so callers must compare the windows' bytes.
//
// Offsets are stored as base offset + 1 in an int64, not int32: base can be
// up to inputSizeLimit (2^48) bytes, and a sampled window past offset 2^31
// would otherwise wrap a narrower signed type negative, handing callers an
// out-of-range index for a perfectly valid input.
func (idx *baseIndex) lookup(f uint64) (int, bool) {
	if len(idx.slots) == 0 {
		return 0, false
	}

	slot := uint32(f) & idx.mask
	v := idx.slots[slot]
	if v == 0 {
		return 0, false
	}

	return int(v - 1), true
}

// nextPow2 returns the smallest power of two >= n (minimum 1).
func nextPow2(n int) int {
	if n < 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
