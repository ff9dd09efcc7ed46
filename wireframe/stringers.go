// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wireframe

import (
	"strconv"
	"strings"
)

// String returns the node's height followed by its bounding box, for
// example "2:[0,0,10,10]".
func (n NodeBox) String() string {
	return strconv.Itoa(n.Height) + ":" + n.Box.String()
}

// String returns a string summarizing the Frame. The returned value is
// a summary and not meant to be exhaustive.
func (f *Frame) String() string {
	var b strings.Builder
	b.WriteString("Frame{Count:")
	b.WriteString(strconv.Itoa(f.Count))
	b.WriteString(",Nodes:")
	b.WriteString(strconv.Itoa(len(f.Nodes)))
	b.WriteString(",Heights:[")
	for i, h := range f.Heights() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(h))
	}
	b.WriteString("]}")
	return b.String()
}
