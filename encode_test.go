// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package gdelta

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func mustDecode(t *testing.T, delta, base []byte) []byte {
	t.Helper()
	out, err := Decode(delta, base)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return out
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name       string
		base, want string
	}{
		{"empty/empty", "", ""},
		{"empty base", "", "brand new content with no relation to base"},
		{"empty new", "some base content", ""},
		{"identical", "identical buffers match exactly", "identical buffers match exactly"},
		{"S1", "Hello, World!", "Hello, World! Modified"},
		{"S2", "Hello, World!\n", "Hello, Rust!\n"},
		{"unrelated", "aaaaaaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbbbbbb"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			base, newData := []byte(c.base), []byte(c.want)
			delta, err := Encode(newData, base)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			got := mustDecode(t, delta, base)
			if !bytes.Equal(got, newData) {
				t.Fatalf("round trip mismatch:\n got  %q\n want %q", got, newData)
			}
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	base := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 200))
	newData := []byte(strings.Repeat("the quick brown fox leaps over the lazy dog ", 200))

	a, err := Encode(newData, base)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	b, err := Encode(newData, base)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("Encode produced different output across two calls with identical input")
	}
}

func TestEncodeIdentityBaseIsSingleCopy(t *testing.T) {
	data := []byte(strings.Repeat("stable content, nothing changes here ", 40))

	delta, err := Encode(data, data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	insns, err := parseInstructions(delta)
	if err != nil {
		t.Fatalf("parseInstructions failed: %v", err)
	}
	if len(insns) != 1 || insns[0].tag != tagCopy {
		t.Fatalf("Encode(x, x) produced %d instructions, want exactly one Copy: %+v", len(insns), insns)
	}
	if insns[0].offset != 0 || insns[0].length != len(data) {
		t.Fatalf("Encode(x, x) Copy = {%d,%d}, want {0,%d}", insns[0].offset, insns[0].length, len(data))
	}

	got := mustDecode(t, delta, data)
	if !bytes.Equal(got, data) {
		t.Fatal("identity round trip mismatch")
	}
}

func TestEncodeIdentityEmptyIsEmptyBody(t *testing.T) {
	delta, err := Encode(nil, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	insns, err := parseInstructions(delta)
	if err != nil {
		t.Fatalf("parseInstructions failed: %v", err)
	}
	if len(insns) != 0 {
		t.Fatalf("Encode(\"\", \"\") produced %d instructions, want 0", len(insns))
	}
}

func TestEncodeEmptyBaseIsSingleLiteral(t *testing.T) {
	newData := []byte("brand new content, nothing in base to copy from")
	delta, err := Encode(newData, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	insns, err := parseInstructions(delta)
	if err != nil {
		t.Fatalf("parseInstructions failed: %v", err)
	}
	if len(insns) != 1 || insns[0].tag != tagLiteral {
		t.Fatalf("Encode(new, \"\") produced %d instructions, want exactly one Literal: %+v", len(insns), insns)
	}
	if !bytes.Equal(insns[0].data, newData) {
		t.Fatalf("literal payload = %q, want %q", insns[0].data, newData)
	}
}

func TestEncodeEmptyNewIsEmptyBody(t *testing.T) {
	delta, err := Encode(nil, []byte("some base content that is irrelevant here"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	insns, err := parseInstructions(delta)
	if err != nil {
		t.Fatalf("parseInstructions failed: %v", err)
	}
	if len(insns) != 0 {
		t.Fatalf("Encode(\"\", base) produced %d instructions, want 0", len(insns))
	}
}

// TestEncodeGrowthInvariant guards the historical regression where the
// trivial-case suffix copy's base offset was computed from |new| instead of
// |base|. A buffer that grows by inserting novel content in the middle while
// keeping its original prefix and suffix intact must still round-trip.
func TestEncodeGrowthInvariant(t *testing.T) {
	prefix := strings.Repeat("PREFIX-", 20)
	suffix := strings.Repeat("-SUFFIX", 20)
	base := []byte(prefix + suffix)
	newData := []byte(prefix + "THIS IS BRAND NEW CONTENT INSERTED IN THE MIDDLE" + suffix)

	if len(newData) <= len(base) {
		t.Fatal("test setup error: new must be strictly larger than base")
	}

	delta, err := Encode(newData, base)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got := mustDecode(t, delta, base)
	if !bytes.Equal(got, newData) {
		t.Fatalf("growth invariant round trip mismatch:\n got  %q\n want %q", got, newData)
	}
}

// TestEncodeS4AppendOnly mirrors the append-only scenario: a large random
// base with bytes appended at the end must decode as Copy{0,|base|} then a
// Literal of exactly the appended bytes.
func TestEncodeS4AppendOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	base := make([]byte, 128*1024)
	rng.Read(base)

	appended := []byte("0123456789ABCDEF")
	newData := append(append([]byte{}, base...), appended...)

	delta, err := Encode(newData, base)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	insns, err := parseInstructions(delta)
	if err != nil {
		t.Fatalf("parseInstructions failed: %v", err)
	}
	if len(insns) != 2 {
		t.Fatalf("append-only delta has %d instructions, want 2", len(insns))
	}
	if insns[0].tag != tagCopy || insns[0].offset != 0 || insns[0].length != len(base) {
		t.Fatalf("first instruction = %+v, want Copy{0,%d}", insns[0], len(base))
	}
	if insns[1].tag != tagLiteral || !bytes.Equal(insns[1].data, appended) {
		t.Fatalf("second instruction = %+v, want Literal{%q}", insns[1], appended)
	}

	got := mustDecode(t, delta, base)
	if !bytes.Equal(got, newData) {
		t.Fatal("append-only round trip mismatch")
	}
}

// TestEncodeS5PrefixRemoval mirrors the prefix-removal scenario: the new
// buffer is the base with its first 16 bytes stripped.
func TestEncodeS5PrefixRemoval(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	base := make([]byte, 128*1024)
	rng.Read(base)

	newData := append([]byte{}, base[16:]...)

	delta, err := Encode(newData, base)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got := mustDecode(t, delta, base)
	if !bytes.Equal(got, newData) {
		t.Fatal("prefix-removal round trip mismatch")
	}
}

func TestEncodeLargeSimilarBuffers(t *testing.T) {
	lines := make([]string, 10000)
	for i := range lines {
		lines[i] = strings.Repeat("x", 0) + padNumber(i) + " the rest of a numbered line of filler text\n"
	}
	base := []byte(strings.Join(lines, ""))

	modified := make([]string, len(lines))
	copy(modified, lines)
	for i := 100; i < 200; i++ {
		modified[i] = "REPLACED-REPLACED-REPLACED-REPLACED-REPLACED-\n"
	}
	newData := []byte(strings.Join(modified, ""))

	delta, err := Encode(newData, base)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	rawBodySize := len(delta)
	if rawBodySize > len(newData)/10 {
		t.Errorf("raw delta size %d exceeds 10%% of |new| (%d)", rawBodySize, len(newData)/10)
	}

	got := mustDecode(t, delta, base)
	if !bytes.Equal(got, newData) {
		t.Fatal("large-buffer round trip mismatch")
	}
}

func padNumber(i int) string {
	s := "000000"
	digits := []byte{}
	for n := i; ; {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
		if n == 0 {
			break
		}
	}
	return s[:len(s)-len(digits)] + string(digits)
}
