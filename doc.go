// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

/*
Package gdelta implements the GDelta delta-compression algorithm: given a
base byte buffer and a new byte buffer, it produces a compact delta byte
buffer from which the new buffer can be reconstructed exactly.

The algorithm uses a GEAR rolling hash to build a content-defined index over
the base buffer, scans the new buffer against that index, extends matches
bidirectionally, and greedily emits copy/literal instructions. Encoding and
decoding are both O(n) single passes with no backtracking.

# Encode

	delta, err := gdelta.Encode(newData, baseData)

# Decode

	recovered, err := gdelta.Decode(delta, baseData)

	// recovered == newData

Both functions are pure, reentrant, and allocate only their own output (and,
for Encode, a transient base index). Neither spawns goroutines, blocks on
I/O, or retains state between calls.

For a raw delta wrapped with a general-purpose compressor (zstd or lz4) plus
a format tag, see the sibling wrapper package. For a command-line front end,
see cmd/gdelta.
*/
package gdelta
