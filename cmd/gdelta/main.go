// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

// Command gdelta is a thin command-line front end over the gdelta package:
// it reads files, calls Encode/Decode, and writes the result, plus the
// bookkeeping (compression wrapper selection, overwrite/verify checks,
// memory-pressure heuristics) neither of those functions are responsible
// for.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitCodeFor(err)
	}
	return exitSuccess
}
