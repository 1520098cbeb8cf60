// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package main

import "errors"

// Exit codes. The numbering (with gaps at 3) matches the scheme this tool's
// predecessor used, kept so existing scripts checking for a specific code
// keep working.
const (
	exitSuccess          = 0
	exitError            = 1
	exitEncodeDecodeFail = 2
	exitOutOfMemory      = 4
	exitUserCancelled    = 5
)

var errUserCancelled = errors.New("cancelled by user")

// exitCodeFor maps an error from the encode/decode command paths to a
// process exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errUserCancelled):
		return exitUserCancelled
	case errors.Is(err, errOutOfMemory):
		return exitOutOfMemory
	case errors.Is(err, errEncodeDecodeFailed):
		return exitEncodeDecodeFail
	default:
		return exitError
	}
}
