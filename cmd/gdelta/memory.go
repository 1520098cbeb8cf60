// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

var errOutOfMemory = errors.New("insufficient memory for this operation")

// memoryCeiling is a conservative stand-in for "how much memory is fine to
// use without asking." This tool has no portable way to query actual system
// memory pressure (no such dependency appears anywhere in the stack it
// otherwise draws on), so it substitutes a fixed ceiling for "available
// RAM" rather than pretending to measure it.
const memoryCeiling = 4 << 30 // 4 GiB

// estimateEncodeMemory approximates Encode's peak working set: base plus
// new plus the returned delta (worst case, bounded by |new|), plus a |base|/5
// allowance for the transient base index. The allowance is smaller than the
// index buildBaseIndex allocates (8-byte slots numbering roughly 0.45 to 0.9
// times |base|), so for large bases the estimate undercounts the index.
func estimateEncodeMemory(baseSize, newSize uint64) uint64 {
	return baseSize + newSize + newSize + baseSize/5
}

// estimateDecodeMemory approximates Decode's peak working set: base plus
// delta plus the reconstructed output (estimated as |base|).
func estimateDecodeMemory(baseSize, deltaSize uint64) uint64 {
	return baseSize + deltaSize + baseSize + baseSize/5
}

// checkMemory prints a memory estimate and, if it looks steep relative to
// memoryCeiling, asks for confirmation before continuing (unless yes or
// quiet is set -- quiet implies non-interactive use and is treated the same
// as an affirmative answer, matching -y).
func checkMemory(required uint64, yes, quiet bool) error {
	usagePct := float64(required) / float64(memoryCeiling) * 100

	if !quiet && usagePct < 80 {
		fmt.Fprintf(os.Stderr, "%s ~%s estimated\n", color.CyanString("Memory:"), humanize.Bytes(required))
		return nil
	}

	if usagePct < 80 {
		return nil
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "%s this operation is estimated to use ~%s\n",
		color.YellowString("Memory warning:"), humanize.Bytes(required))
	fmt.Fprintf(os.Stderr, "   (soft ceiling: %s)\n\n", humanize.Bytes(memoryCeiling))

	if yes || quiet {
		fmt.Fprintf(os.Stderr, "   %s continuing anyway (-y)\n\n", color.YellowString("!"))
		return nil
	}

	fmt.Fprint(os.Stderr, "   Continue? [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer != "y" && answer != "yes" {
		return errUserCancelled
	}
	return nil
}
