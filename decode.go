// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package gdelta

// Decode reconstructs the buffer a matching Encode(new, base) call would
// have produced delta from, given the same base. It is a single linear
// pass over delta with no lookahead or backtracking.
//
// Decode rejects any structurally invalid delta with one of the sentinel
// errors in errors.go; it never panics on malformed input and never
// partially applies a delta it cannot finish.
func Decode(delta, base []byte) ([]byte, error) {
	if len(delta) < 4 {
		return nil, ErrTruncated
	}

	var magic [4]byte
	copy(magic[:], delta[:4])
	if magic != wireMagic {
		return nil, ErrBadMagic
	}
	pos := 4

	if pos >= len(delta) {
		return nil, ErrTruncated
	}
	version := delta[pos]
	pos++
	if version != wireVersion {
		return nil, ErrUnsupportedVersion
	}

	if pos >= len(delta) {
		return nil, ErrTruncated
	}
	pos++ // flags: reserved, not interpreted by this version

	newLenU, n, err := readVarint(delta[pos:])
	if err != nil {
		return nil, err
	}
	pos += n

	// base_len_hint is informational (§6.2); it is parsed so the cursor
	// lands on the instruction stream but is not checked against len(base).
	_, n, err = readVarint(delta[pos:])
	if err != nil {
		return nil, err
	}
	pos += n

	if newLenU > inputSizeLimit {
		return nil, ErrInputTooLarge
	}
	newLen := int(newLenU)

	baseLenU := uint64(len(base))

	// newLen is still an unverified header field at this point; reserving it
	// outright would let a tiny malformed delta (new_len near inputSizeLimit)
	// force a multi-terabyte allocation before any instruction is checked.
	// Cap the upfront reservation and let append grow the rest normally.
	reserve := newLen
	if reserve > decodeReserveCeiling {
		reserve = decodeReserveCeiling
	}
	out := make([]byte, 0, reserve)

	for pos < len(delta) {
		tag := delta[pos]
		pos++

		switch tag {
		case tagCopy:
			offU, n, err := readVarint(delta[pos:])
			if err != nil {
				return nil, err
			}
			pos += n

			lenU, n, err := readVarint(delta[pos:])
			if err != nil {
				return nil, err
			}
			pos += n

			if offU > baseLenU || lenU > baseLenU-offU {
				return nil, ErrCopyOutOfRange
			}

			off, length := int(offU), int(lenU)
			out = append(out, base[off:off+length]...)

		case tagLiteral:
			lenU, n, err := readVarint(delta[pos:])
			if err != nil {
				return nil, err
			}
			pos += n

			remaining := uint64(len(delta) - pos)
			if lenU > remaining {
				return nil, ErrTruncated
			}

			length := int(lenU)
			out = append(out, delta[pos:pos+length]...)
			pos += length

		default:
			return nil, ErrBadInstructionTag
		}
	}

	if len(out) != newLen {
		return nil, ErrLengthMismatch
	}

	return out, nil
}
