// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package main

import "errors"

// errEncodeDecodeFailed wraps a failure from the core codec or wrapper
// package so exitCodeFor can tell it apart from a CLI-level usage error
// (missing file, existing output, and the like).
var errEncodeDecodeFailed = errors.New("encode/decode failed")

func wrapCodecError(err error) error {
	if err == nil {
		return nil
	}
	return &codecError{err}
}

type codecError struct{ cause error }

func (e *codecError) Error() string { return e.cause.Error() }
func (e *codecError) Unwrap() error { return e.cause }
func (e *codecError) Is(target error) bool {
	return target == errEncodeDecodeFailed
}
