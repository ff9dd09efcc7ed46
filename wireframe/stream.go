// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wireframe

import "io"

// phase is the position of a Reader or Writer within its stream.
type phase int

const (
	phaseStart  phase = iota // nothing read or written yet
	phaseMagic               // magic number in progress
	phaseFrames              // magic number done, frames follow
	phaseEnd                 // end of stream seen (Reader only)
)

// stream tracks the phase of a Reader or Writer and latches the first
// error it hits. Once an error is latched every later operation
// returns it.
type stream struct {
	phase phase
	err   error
}

// advance moves from phase from to phase to. It fails with the latched
// error, if any, or if the stream is not in phase from.
func (s *stream) advance(from, to phase) error {
	switch {
	case s.err != nil:
		return s.err
	case s.phase != from:
		return errUnexpectedPhase
	}
	s.phase = to
	return nil
}

// fail latches err and returns it.
func (s *stream) fail(err error) error {
	if s.err != nil {
		panicf("logic error: already failed with %v", s.err)
	}
	s.err = err
	return err
}

// shut latches ErrClosed and closes c if it is an io.Closer. Shutting
// a stream twice returns ErrClosed.
func (s *stream) shut(c interface{}) error {
	if s.err == ErrClosed {
		return ErrClosed
	}
	s.err = ErrClosed
	if closer, ok := c.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
