// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"io"
)

type sink interface {
	io.Writer
	io.ByteWriter
	io.StringWriter

	// Count of bytes written so far, including discarded ones.
	Count() int
}

// counter measures output without storing it.
type counter struct {
	n int
}

func (c *counter) Count() int { return c.n }

func (c *counter) Write(b []byte) (int, error) {
	c.n += len(b)
	return len(b), nil
}

func (c *counter) WriteString(s string) (int, error) {
	c.n += len(s)
	return len(s), nil
}

func (c *counter) WriteByte(byte) error {
	c.n++
	return nil
}

// clip stores output in dst and discards the rest.
type clip struct {
	dst []byte
	n   int
}

func (c *clip) Count() int { return c.n }

func (c *clip) written() int {
	if c.n > len(c.dst) {
		return len(c.dst)
	}
	return c.n
}

func (c *clip) Write(b []byte) (int, error) {
	if c.n < len(c.dst) {
		copy(c.dst[c.n:], b)
	}
	c.n += len(b)
	return len(b), nil
}

func (c *clip) WriteString(s string) (int, error) {
	if c.n < len(c.dst) {
		copy(c.dst[c.n:], s)
	}
	c.n += len(s)
	return len(s), nil
}

func (c *clip) WriteByte(value byte) error {
	if c.n < len(c.dst) {
		c.dst[c.n] = value
	}
	c.n++
	return nil
}
