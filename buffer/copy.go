// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"gate.computer/boundstr/errors"
)

var errCopyRange = errors.Wrap(errors.ErrArgument, "copy length out of source range")

// Copy NUL-terminated src, replacing content.  If src has no terminator, all
// of it is copied.
func (b *Buffer) Copy(src []byte) error {
	if src == nil {
		return errors.ErrNullArgument
	}
	return copyText(b, src)
}

// CopyString replaces content with s, up to its first NUL byte.
func (b *Buffer) CopyString(s string) error {
	return copyText(b, s)
}

func copyText[T text](b *Buffer, src T) error {
	if !b.valid() {
		return errors.ErrNullArgument
	}

	n, err := b.fit(scan(src, b.Cap()), b.Cap())
	if err != nil {
		return err
	}

	store(b, 0, src, n)
	return nil
}

// CopyN replaces content with exactly n bytes of src.  Source is not scanned
// for terminator.
func (b *Buffer) CopyN(src []byte, n int) error {
	if !b.valid() || src == nil {
		return errors.ErrNullArgument
	}
	if n < 0 || n > len(src) || n > b.config.MaxSize {
		return errCopyRange
	}

	n, err := b.fit(n, b.Cap())
	if err != nil {
		return err
	}

	store(b, 0, src, n)
	return nil
}

// CopyBuffer replaces content with the content of src.
func (b *Buffer) CopyBuffer(src *Buffer) error {
	if !b.valid() || !src.valid() {
		return errors.ErrNullArgument
	}

	n, err := b.fit(src.length, b.Cap())
	if err != nil {
		return err
	}

	store(b, 0, src.data[:src.length], n)
	return nil
}
