// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"io"

	"gate.computer/boundstr/errors"
)

// Write appends p without looking for terminator.  Under the error policy
// nothing is written if p doesn't fit.  Under the truncate policy the count
// is short and the error is io.ErrShortWrite.
func (b *Buffer) Write(p []byte) (int, error) {
	return writeText(b, p)
}

// WriteString is like Write.
func (b *Buffer) WriteString(s string) (int, error) {
	return writeText(b, s)
}

func writeText[T text](b *Buffer, p T) (n int, err error) {
	if !b.valid() {
		err = errors.ErrNullArgument
		return
	}

	avail := b.Cap() - b.length

	n, err = b.fit(len(p), avail)
	if err != nil {
		return
	}

	store(b, b.length, p, n)
	if n < len(p) {
		err = io.ErrShortWrite
	}
	return
}

// PutByte appends a byte.  Under the truncate policy it is dropped if the
// buffer is full.
func (b *Buffer) PutByte(value byte) error {
	if !b.valid() {
		return errors.ErrNullArgument
	}

	n, err := b.fit(1, b.Cap()-b.length)
	if err != nil {
		return err
	}

	if n > 0 {
		b.data[b.length] = value
		b.setLen(b.length + 1)
	}
	return nil
}
