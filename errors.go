// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package gdelta

import "errors"

// Sentinel errors for encode and decode. The set is closed: every failure
// returned by this package is, or wraps, one of these.
var (
	// ErrTruncated is returned when a varint or instruction payload runs out
	// of delta bytes before it is fully read.
	ErrTruncated = errors.New("gdelta: truncated delta")

	// ErrBadMagic is returned when a delta's header magic does not match.
	ErrBadMagic = errors.New("gdelta: bad magic")

	// ErrUnsupportedVersion is returned when a delta's header version is not
	// one this decoder understands.
	ErrUnsupportedVersion = errors.New("gdelta: unsupported version")

	// ErrBadInstructionTag is returned when an instruction tag byte is
	// neither the literal nor the copy marker.
	ErrBadInstructionTag = errors.New("gdelta: bad instruction tag")

	// ErrOverflow is returned when a varint exceeds the maximum encoded
	// width or its accumulated value would exceed 2^64-1.
	ErrOverflow = errors.New("gdelta: varint overflow")

	// ErrCopyOutOfRange is returned when a copy instruction references bytes
	// beyond the end of the base buffer.
	ErrCopyOutOfRange = errors.New("gdelta: copy out of range")

	// ErrLengthMismatch is returned when the reconstructed output length
	// does not match the delta's declared new_len.
	ErrLengthMismatch = errors.New("gdelta: length mismatch")

	// ErrInputTooLarge is returned when base or new exceeds the platform
	// limit this package is willing to index or reconstruct.
	ErrInputTooLarge = errors.New("gdelta: input too large")
)
