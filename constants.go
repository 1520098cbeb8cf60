// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package gdelta

// Wire-format and algorithm constants. These are compile-time constants, not
// runtime options: §9 of the algorithm's specification is explicit that W
// and S affect the byte-exact shape of the encoder's output, so any change
// here is a wire-format version bump, not a config knob.

const (
	// wordSize (W) is the width in bytes of the GEAR hash window. It also
	// doubles as the minimum accepted match length.
	wordSize = 8

	// sampleRate (S) is the stride at which base windows are inserted into
	// the index: one in every S consecutive positions.
	sampleRate = 3

	// chunkSizeHint is an informational upper bound on typical input size.
	// Neither Encode nor Decode reads it: Encode sizes its output from
	// len(newData) and Decode from the header's new_len.
	chunkSizeHint = 300 * 1024

	// missStreakSkip is the number of consecutive probe misses after which
	// the encoder advances in wordSize-byte strides instead of one byte at a
	// time. The exact threshold is a deliberate open question in the
	// algorithm's spec (any K >= wordSize preserves round-trip correctness);
	// this value only trades index-scan cost for a slightly coarser miss
	// region and does not affect decodability.
	missStreakSkip = wordSize

	// maxVarintWidth caps varint decode at this many bytes, preventing an
	// unbounded read from a malformed delta.
	maxVarintWidth = 10

	// indexLoadFactor bounds the base index's table occupancy.
	indexLoadFactor = 0.75

	// inputSizeLimit is the platform-appropriate ceiling on base/new length.
	// It is a fixed 2^48-byte ceiling, well past 32-bit offsets (the base
	// index stores offsets as int64 for that reason) and well inside int64
	// range, rather than a probe of actual RAM -- the core codec never
	// queries system memory (see cmd/gdelta for the CLI's best-effort
	// memory-pressure heuristic).
	inputSizeLimit = 1 << 48

	// decodeReserveCeiling bounds how much of Decode's declared new_len it
	// will preallocate up front. new_len comes from the delta header, which
	// is untrusted until the instruction stream has actually been replayed;
	// a malformed header claiming an enormous new_len must not be able to
	// force an enormous allocation before a single instruction is checked.
	// Past this ceiling, output grows through ordinary append reallocation
	// instead of one upfront reservation.
	decodeReserveCeiling = 64 << 20
)

// wireMagic is the 4-byte header sentinel. It does not collide with the
// wrapper package's RAW\0/ZST\0/LZ4\0 tags.
var wireMagic = [4]byte{'G', 'D', 'L', 'T'}

// wireVersion is the current header version.
const wireVersion byte = 1

// Instruction tag bytes (wire format §6.2).
const (
	tagLiteral byte = 0x00
	tagCopy    byte = 0x01
)
