// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

// Package wrapper prepends a 4-byte tag to a raw delta identifying whether,
// and how, the delta bytes are compressed. It sits outside the core codec:
// gdelta.Encode and gdelta.Decode operate only on the payload after a
// wrapper tag (if any) has been stripped.
package wrapper

import (
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm identifies how a wrapped delta's payload is compressed.
type Algorithm uint8

const (
	// None means the payload is the raw delta, uncompressed.
	None Algorithm = iota
	// Zstd means the payload is a zstd-compressed raw delta.
	Zstd
	// LZ4 means the payload is an LZ4 block-compressed raw delta.
	LZ4
)

// String returns the human-readable name of the algorithm, matching the
// -c/--compress flag values the CLI accepts.
func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

// ParseAlgorithm parses a flag value into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "none":
		return None, nil
	case "zstd":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression algorithm: %q", name)
	}
}

// tagRaw, tagZstd, tagLZ4 are the 4-byte header tags a wrapped delta starts
// with. They are distinct from the core codec's own "GDLT" wire magic so a
// reader can tell at a glance whether a file needs unwrapping first.
var (
	tagRaw  = [4]byte{'R', 'A', 'W', 0}
	tagZstd = [4]byte{'Z', 'S', 'T', 0}
	tagLZ4  = [4]byte{'L', 'Z', '4', 0}
)

// zstdEncoder and zstdDecoder are reused across calls; both types are safe
// for concurrent use once constructed.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("wrapper: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("wrapper: zstd decoder initialization failed: " + err.Error())
	}
}

// Wrap prepends a tag identifying algo to delta and, for Zstd and LZ4,
// compresses the delta bytes first. An LZ4 block that would not shrink is
// stored uncompressed under the RAW tag instead, so Unwrap reports None for
// it.
func Wrap(delta []byte, algo Algorithm) ([]byte, error) {
	switch algo {
	case None:
		out := make([]byte, 0, 4+len(delta))
		out = append(out, tagRaw[:]...)
		return append(out, delta...), nil

	case Zstd:
		compressed := zstdEncoder.EncodeAll(delta, nil)
		out := make([]byte, 0, 4+len(compressed))
		out = append(out, tagZstd[:]...)
		return append(out, compressed...), nil

	case LZ4:
		bound := lz4.CompressBlockBound(len(delta))
		dst := make([]byte, bound)
		n, err := lz4.CompressBlock(delta, dst, nil)
		if err != nil {
			return nil, fmt.Errorf("wrapper: lz4 compress: %w", err)
		}
		if n == 0 {
			// CompressBlock reports 0 when the block would not have
			// shrunk; the wrapper falls back to storing it raw.
			return Wrap(delta, None)
		}

		// The LZ4 block format doesn't carry the uncompressed size, so
		// Unwrap needs it recorded alongside the tag.
		out := make([]byte, 0, 4+4+n)
		out = append(out, tagLZ4[:]...)
		var lenBuf [4]byte
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(delta)))
		out = append(out, lenBuf[:]...)
		return append(out, dst[:n]...), nil

	default:
		return nil, fmt.Errorf("wrapper: unsupported algorithm: %v", algo)
	}
}

// DecompressRaw decompresses data as algo without expecting a Wrap-style
// tag or length prefix, for callers that already know the format out of
// band (e.g. a CLI --format override). LZ4's block format carries no
// embedded size, so LZ4 here is only supported via the tagged form Wrap
// produces.
func DecompressRaw(data []byte, algo Algorithm) ([]byte, error) {
	switch algo {
	case None:
		return data, nil
	case Zstd:
		out, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("wrapper: zstd decompress: %w", err)
		}
		return out, nil
	case LZ4:
		return nil, fmt.Errorf("wrapper: raw lz4 decompression needs a known output size; pass a wrapped delta instead")
	default:
		return nil, fmt.Errorf("wrapper: unsupported algorithm: %v", algo)
	}
}

// Unwrap reads a wrapped delta's tag, decompresses the payload if needed,
// and returns the raw delta bytes plus which algorithm produced them.
func Unwrap(data []byte) ([]byte, Algorithm, error) {
	if len(data) < 4 {
		return nil, 0, fmt.Errorf("wrapper: input too short to carry a tag")
	}

	var tag [4]byte
	copy(tag[:], data[:4])
	payload := data[4:]

	switch tag {
	case tagRaw:
		return payload, None, nil

	case tagZstd:
		out, err := zstdDecoder.DecodeAll(payload, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("wrapper: zstd decompress: %w", err)
		}
		return out, Zstd, nil

	case tagLZ4:
		if len(payload) < 4 {
			return nil, 0, fmt.Errorf("wrapper: lz4 payload missing length prefix")
		}
		uncompressedSize := binary.LittleEndian.Uint32(payload[:4])
		compressed := payload[4:]

		dst := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(compressed, dst)
		if err != nil {
			return nil, 0, fmt.Errorf("wrapper: lz4 decompress: %w", err)
		}
		if uint32(n) != uncompressedSize {
			return nil, 0, fmt.Errorf("wrapper: lz4 decompress: got %d bytes, expected %d", n, uncompressedSize)
		}
		return dst, LZ4, nil

	default:
		return nil, 0, fmt.Errorf("wrapper: unrecognized tag %q", tag[:])
	}
}

// DetectTagged reports whether data begins with a tag Wrap would produce,
// distinguishing a wrapped delta from a bare core-codec delta (which begins
// with the unrelated "GDLT" magic).
func DetectTagged(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	var tag [4]byte
	copy(tag[:], data[:4])
	return tag == tagRaw || tag == tagZstd || tag == tagLZ4
}
