// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wireframe

import (
	"fmt"
	"io"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/gogama/spatial/littleendian"
)

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers, trapping any panic that occurs and converting it to a
// normal Go error.
//
// FlatBuffers' Go code doesn't use standard Go error handling, and
// consequently any attempt to read malformed FlatBuffers data may
// trigger a panic.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: flatbuffers: %v", r)
		}
	}()
	err = f()
	return
}

// writeSizePrefixed writes a finished, size-prefixed FlatBuffers
// buffer to an output stream after checking that the size prefix
// agrees with the buffer length.
func writeSizePrefixed(w io.Writer, b []byte) (n int, err error) {
	var size uint32
	if size, err = prefixSize(b); err != nil {
		return
	} else if uint64(size)+flatbuffers.SizeUint32 != uint64(len(b)) {
		err = errorf("size prefix does not match buffer (Len=%d, size=%d)", len(b), size)
		return
	} else {
		return w.Write(b)
	}
}

func prefixSize(b []byte) (size uint32, err error) {
	if len(b) < flatbuffers.SizeUint32 {
		err = errorf("buffer too short for size prefix (Len=%d)", len(b))
		return
	}
	size = littleendian.Uint32(b)
	return
}
