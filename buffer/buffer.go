// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buffer implements a NUL-terminated string buffer with fixed
// capacity, over storage owned by the caller.
//
// Content length never exceeds capacity, which is one byte less than the
// storage size, and the byte following the content is always zero.  Failed
// operations leave the buffer as it was.  Under the truncate policy,
// operations which would exceed capacity succeed with a clipped result.
//
// Buffers are not safe for concurrent use.
package buffer

import (
	"gate.computer/boundstr/config"
	"gate.computer/boundstr/errors"
)

var (
	errNoTerminator = errors.Wrap(errors.ErrCapacity, "storage has no room for terminator")
	errTooLarge     = errors.Wrap(errors.ErrCapacity, "storage size exceeds maximum")
	errUnterminated = errors.Wrap(errors.ErrArgument, "storage is not terminated")
)

// Buffer is a fixed-capacity string buffer.  The default value has no storage;
// operations on it fail with errors.ErrNullArgument.
type Buffer struct {
	data   []byte // Content, terminator and unused space.
	length int
	config *config.Config
}

// Make buffer over storage, using the given configuration or the default one
// if cfg is nil.  Storage size must be non-zero.  The returned value must not
// be copied after use.
func Make(cfg *config.Config, storage []byte) (b Buffer, err error) {
	b, err = bind(cfg, storage)
	if err == nil {
		b.setLen(0)
	}
	return
}

// New buffer with the default configuration.
func New(storage []byte) (*Buffer, error) {
	return NewConfig(nil, storage)
}

// NewConfig buffer.  Default configuration is used if cfg is nil.
func NewConfig(cfg *config.Config, storage []byte) (*Buffer, error) {
	b, err := Make(cfg, storage)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Buffer) valid() bool {
	return b != nil && b.data != nil
}

// Config which the buffer was created with.  Nil for the zero buffer.
func (b *Buffer) Config() *config.Config {
	if b == nil {
		return nil
	}
	return b.config
}

// Cap is the maximum content length.
func (b *Buffer) Cap() int {
	if !b.valid() {
		return 0
	}
	return len(b.data) - 1
}

// Len of the content.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.length
}

// Bytes returns the content, without terminator.  The slice aliases the
// storage and is valid until the next modification.
func (b *Buffer) Bytes() []byte {
	if !b.valid() {
		return nil
	}
	return b.data[:b.length:b.length]
}

// CString returns the content followed by the terminator.
func (b *Buffer) CString() []byte {
	if !b.valid() {
		return nil
	}
	return b.data[:b.length+1 : b.length+1]
}

func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Clear content.  Clearing an empty buffer has no effect.
func (b *Buffer) Clear() error {
	if !b.valid() {
		return errors.ErrNullArgument
	}

	b.length = 0
	b.data[0] = 0
	return nil
}

// fit returns the number of bytes to store out of want, when avail bytes are
// free.
func (b *Buffer) fit(want, avail int) (int, error) {
	if want <= avail {
		return want, nil
	}

	if b.config.Policy == config.Truncate {
		return avail, nil
	}

	return 0, errors.ErrCapacity
}

// setLen terminates content.
func (b *Buffer) setLen(n int) {
	b.length = n
	b.data[n] = 0
}

// Attach to storage which already holds a NUL-terminated string.  The content
// is kept.  Default configuration is used if cfg is nil.
func Attach(cfg *config.Config, storage []byte) (*Buffer, error) {
	b, err := bind(cfg, storage)
	if err != nil {
		return nil, err
	}

	n := scan(storage, b.Cap())
	if n > b.Cap() {
		return nil, errUnterminated
	}

	b.length = n
	return &b, nil
}

func bind(cfg *config.Config, storage []byte) (b Buffer, err error) {
	if cfg == nil {
		cfg = config.Default()
	}

	switch {
	case storage == nil:
		err = errors.ErrNullArgument

	case len(storage) == 0:
		err = errNoTerminator

	case len(storage)-1 > cfg.MaxSize:
		err = errTooLarge

	default:
		b = Buffer{
			data:   storage,
			config: cfg,
		}
	}
	return
}
