// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package gdelta

// instruction is a parsed view of one decoded wire instruction, used only by
// tests that need to assert on the shape of an encoded delta rather than
// just its round-trip behavior.
type instruction struct {
	tag    byte
	offset int // valid when tag == tagCopy
	length int
	data   []byte // valid when tag == tagLiteral
}

// parseInstructions walks a delta's header and body, returning every
// instruction without applying them against a base buffer. It deliberately
// duplicates a little of Decode's header parsing rather than reusing it, so
// that a bug in Decode's header handling doesn't also hide itself from these
// structural assertions.
func parseInstructions(delta []byte) ([]instruction, error) {
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
	pos++ // version
	if pos >= len(delta) {
		return nil, ErrTruncated
	}
	pos++ // flags

	_, n, err := readVarint(delta[pos:])
	if err != nil {
		return nil, err
	}
	pos += n

	_, n, err = readVarint(delta[pos:])
	if err != nil {
		return nil, err
	}
	pos += n

	var out []instruction
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
			out = append(out, instruction{tag: tagCopy, offset: int(offU), length: int(lenU)})

		case tagLiteral:
			lenU, n, err := readVarint(delta[pos:])
			if err != nil {
				return nil, err
			}
			pos += n
			length := int(lenU)
			if pos+length > len(delta) {
				return nil, ErrTruncated
			}
			out = append(out, instruction{tag: tagLiteral, length: length, data: delta[pos : pos+length]})
			pos += length

		default:
			return nil, ErrBadInstructionTag
		}
	}

	return out, nil
}
