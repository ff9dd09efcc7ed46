// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wireframe

import "io"

// Writer writes a wireframe stream, consisting of the magic number
// followed by any number of encoded frames, to an underlying stream.
type Writer struct {
	stream
	// w is the stream to write to.
	w io.Writer
	// numFrames is the number of frames written so far.
	numFrames int
}

// NewWriter returns a Writer which writes to w. Nothing is written
// until the first call to Write.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panicf("nil writer")
	}
	return &Writer{w: w}
}

// Write appends a frame to the stream, writing the magic number first
// if this is the first frame. It returns the number of bytes written.
//
// A failure of the underlying stream part way through a write leaves
// the Writer in an error state in which every later call fails.
func (w *Writer) Write(f *Frame) (n int, err error) {
	if f == nil {
		panicf("nil frame")
	}

	if err = w.writeMagic(&n); err != nil {
		return
	}

	var m int
	m, err = writeSizePrefixed(w.w, Encode(f))
	n += m
	if err != nil {
		err = wrapErr(err, "failed to write frame %d", w.numFrames)
		if m > 0 {
			_ = w.fail(err)
		}
		return
	}
	w.numFrames++
	return
}

// writeMagic writes the magic number unless it has already been
// written, adding the bytes written to n.
func (w *Writer) writeMagic(n *int) error {
	if w.err == nil && w.phase == phaseFrames {
		return nil
	}
	if err := w.advance(phaseStart, phaseMagic); err != nil {
		return err
	}

	m, err := w.w.Write(magic[:])
	*n += m
	if err != nil {
		return w.fail(wrapErr(err, "failed to write magic number"))
	}

	return w.advance(phaseMagic, phaseFrames)
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int {
	return w.numFrames
}

// Close closes the Writer. If the underlying stream implements
// io.Closer, it is closed too. A stream to which no frame was written
// still receives the magic number, so that it can be read back as a
// valid, empty stream.
func (w *Writer) Close() error {
	if w.err == nil && w.phase == phaseStart {
		var n int
		if err := w.writeMagic(&n); err != nil {
			_ = w.shut(w.w)
			return err
		}
	}
	return w.shut(w.w)
}
