// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wireframe

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by every operation on a Reader or Writer
// after it has been closed.
var ErrClosed = errors.New(prefix + "closed")

var errUnexpectedPhase = errors.New(prefix + "unexpected stream phase")

const prefix = "wireframe: "

func errorf(format string, a ...interface{}) error {
	return fmt.Errorf(prefix+format, a...)
}

// wrapErr prefixes err with a formatted message, keeping it available
// to errors.Is and errors.As.
func wrapErr(err error, format string, a ...interface{}) error {
	return fmt.Errorf(prefix+format+": %w", append(a, err)...)
}

func panicf(format string, a ...interface{}) {
	panic(fmt.Sprintf(prefix+format, a...))
}
