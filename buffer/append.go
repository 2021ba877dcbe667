// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"gate.computer/boundstr/errors"
)

// Append NUL-terminated src.  If src has no terminator, all of it is
// appended.
func (b *Buffer) Append(src []byte) error {
	if src == nil {
		return errors.ErrNullArgument
	}
	return appendText(b, src)
}

// AppendString appends s up to its first NUL byte.
func (b *Buffer) AppendString(s string) error {
	return appendText(b, s)
}

func appendText[T text](b *Buffer, src T) error {
	if !b.valid() {
		return errors.ErrNullArgument
	}

	avail := b.Cap() - b.length

	n, err := b.fit(scan(src, avail), avail)
	if err != nil {
		return err
	}

	store(b, b.length, src, n)
	return nil
}

// AppendBuffer appends the content of src.  If src is b, the content is
// doubled.
func (b *Buffer) AppendBuffer(src *Buffer) error {
	if !b.valid() || !src.valid() {
		return errors.ErrNullArgument
	}

	avail := b.Cap() - b.length

	n, err := b.fit(src.length, avail)
	if err != nil {
		return err
	}

	store(b, b.length, src.data[:src.length], n)
	return nil
}
