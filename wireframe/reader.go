// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wireframe

import (
	"errors"
	"io"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/gogama/spatial/littleendian"
)

// Reader reads frames from a wireframe stream.
type Reader struct {
	stream
	// r is the stream to read from.
	r io.Reader
	// version is the stream format version, known after the magic
	// number has been read.
	version FormatVersion
	// numFrames is the number of frames read so far.
	numFrames int
}

// NewReader returns a Reader which reads from r. Nothing is read until
// the first call to Version or Next.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panicf("nil reader")
	}
	return &Reader{r: r}
}

// Version reads the magic number, if it has not been read yet, and
// returns the stream format version.
func (r *Reader) Version() (FormatVersion, error) {
	if err := r.readMagic(); err != nil {
		return FormatVersion{}, err
	}
	return r.version, nil
}

// readMagic reads and checks the magic number unless it has already
// been read.
func (r *Reader) readMagic() error {
	if r.err == nil && r.phase != phaseStart {
		return nil
	}
	if err := r.advance(phaseStart, phaseMagic); err != nil {
		return err
	}

	version, err := Magic(r.r)
	if err != nil {
		return r.fail(wrapErr(err, "failed to read magic number"))
	}
	if version.Major < MinFormatMajorVersion || version.Major > MaxFormatMajorVersion {
		return r.fail(errorf("unsupported format version %d.%d", version.Major, version.Patch))
	}
	r.version = version

	return r.advance(phaseMagic, phaseFrames)
}

// Next reads the next frame from the stream. It returns io.EOF, and an
// empty Frame, once the stream is exhausted.
func (r *Reader) Next() (Frame, error) {
	if err := r.readMagic(); err != nil {
		return Frame{}, err
	} else if r.phase == phaseEnd {
		return Frame{}, io.EOF
	}

	// Read the size prefix. A clean end of stream here is the normal
	// way for the stream to end.
	prefix := make([]byte, flatbuffers.SizeUint32)
	if _, err := io.ReadFull(r.r, prefix); err == io.EOF {
		_ = r.advance(phaseFrames, phaseEnd)
		return Frame{}, io.EOF
	} else if err != nil {
		return Frame{}, r.fail(wrapErr(err, "failed to read frame %d size", r.numFrames))
	}
	size := littleendian.Uint32(prefix)
	if size > frameMaxLen {
		return Frame{}, r.fail(errorf("frame %d size %d exceeds limit %d", r.numFrames, size, frameMaxLen))
	}

	// Read the rest of the frame.
	p := make([]byte, flatbuffers.SizeUint32+int(size))
	copy(p, prefix)
	if _, err := io.ReadFull(r.r, p[flatbuffers.SizeUint32:]); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Frame{}, r.fail(wrapErr(err, "failed to read frame %d", r.numFrames))
	}

	f, err := Decode(p)
	if err != nil {
		return Frame{}, r.fail(wrapErr(err, "frame %d", r.numFrames))
	}
	r.numFrames++
	return f, nil
}

// All reads every remaining frame in the stream.
func (r *Reader) All() ([]Frame, error) {
	frames := make([]Frame, 0)
	for {
		f, err := r.Next()
		if err == io.EOF {
			return frames, nil
		} else if err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
}

// Close closes the Reader. If the underlying stream implements
// io.Closer, it is closed too.
func (r *Reader) Close() error {
	return r.shut(r.r)
}
