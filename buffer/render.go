// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"gate.computer/boundstr/errors"
)

var errRenderSize = errors.Wrap(errors.ErrArgument, "negative render size")

// Render replaces content with need bytes produced by fill.  The overflow
// policy is applied to need before fill is called; fill receives a slice of
// at most capacity bytes and returns the number of bytes it wrote.  The count
// is clipped to the slice length.
//
// The terminator is written after the content and, in case fill is not
// well-behaved, also at the end of storage.  If fill panics, the buffer is
// terminated at its previous length before the panic continues.
func (b *Buffer) Render(need int, fill func(dst []byte) int) (int, error) {
	if !b.valid() || fill == nil {
		return 0, errors.ErrNullArgument
	}
	if need < 0 {
		return 0, errRenderSize
	}

	n, err := b.fit(need, b.Cap())
	if err != nil {
		return 0, err
	}

	defer func() {
		if x := recover(); x != nil {
			b.data[b.length] = 0
			panic(x)
		}
	}()

	written := fill(b.data[:n:n])
	if written > n {
		written = n
	} else if written < 0 {
		written = 0
	}

	b.data[len(b.data)-1] = 0
	b.setLen(written)
	return written, nil
}
