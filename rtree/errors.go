// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"fmt"
)

const packageName = "rtree: "

// InvalidBoundsError is returned when an item's bounding box has its
// minimum corner greater than its maximum corner on some axis. The
// index is not modified when this error is returned.
type InvalidBoundsError struct {
	// Box is the rejected bounding box.
	Box Box
}

func (err *InvalidBoundsError) Error() string {
	return fmt.Sprintf(packageName+"invalid bounds %s (min must not exceed max)", err.Box)
}

// ConfigurationError is returned by New when the node capacity
// parameters cannot produce a valid tree.
type ConfigurationError struct {
	MaxEntries int
	MinEntries int
	// Reason describes which constraint was violated.
	Reason string
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf(packageName+"invalid configuration (max entries %d, min entries %d): %s", err.MaxEntries, err.MinEntries, err.Reason)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
