// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wireframe

import (
	"io"
)

const (
	// magicLen is the length of the wireframe stream magic number in
	// bytes.
	magicLen = 8
	// MinFormatMajorVersion is the minimum major version of the
	// wireframe stream format that this package can read.
	MinFormatMajorVersion = 0x01
	// MaxFormatMajorVersion is the maximum major version of the
	// wireframe stream format that this package can read.
	MaxFormatMajorVersion = 0x01
	// frameMaxLen is the maximum size of a single encoded frame this
	// package will read. It keeps a corrupted size prefix from causing
	// a huge allocation.
	frameMaxLen = 64 * 1024 * 1024
)

// magic contains the wireframe stream magic number.
//
// The fourth byte is the format major version of data written by this
// package, and the last byte is the format patch version.
var magic = [magicLen]byte{0x72, 0x77, 0x66, 0x01, 0x72, 0x77, 0x66, 0x00}

// FormatVersion is a version of the wireframe stream format.
type FormatVersion struct {
	// Major is the major version of the format.
	Major uint8
	// Patch is the patch version of the format.
	Patch uint8
}

// Magic reads the wireframe magic number from a stream and if it is
// valid, returns the stream format version. It does not read beyond
// the magic number.
//
// Calling this function will result in 8 bytes being read from the
// stream reader (unless there were fewer than 8 bytes available, in
// which all available bytes in the stream are consumed).
func Magic(r io.Reader) (FormatVersion, error) {
	m := make([]byte, magicLen)
	_, err := io.ReadFull(r, m)
	if err != nil {
		return FormatVersion{}, err
	}
	if m[0] == magic[0] &&
		m[1] == magic[1] &&
		m[2] == magic[2] &&
		m[4] == magic[4] &&
		m[5] == magic[5] &&
		m[6] == magic[6] {
		return FormatVersion{m[3], m[7]}, nil
	}
	return FormatVersion{}, errorf("invalid magic number")
}
