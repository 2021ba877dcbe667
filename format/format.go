// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format renders printf-style templates into bounded buffers.
//
// Templates use C conversion syntax: flags (-+0 #), width, precision and
// length modifier (hh h l ll j z t L) followed by a conversion character.
// Only conversions in the configured allowed set are accepted; by default
// those are d, i, u, x, X, s, c and the escaped percent sign.  Floating-point
// (f F e E g G), octal (o) and pointer (p) conversions are supported when the
// configuration allows them.  Width and precision are counted in bytes.
//
// Arguments are Go values.  Integer conversions accept any integer kind.
// Without a length modifier the argument's own width is used; hh and h
// narrow to 8 and 16 bits, l, ll, j, z and t to 64 bits.  Unsigned
// conversions reinterpret negative values as two's complement.  String
// conversions accept strings, byte slices, fmt.Stringers and errors.  An
// argument which doesn't suit its conversion, a missing argument and a
// surplus argument are errors.
package format

import (
	"gate.computer/boundstr/buffer"
	"gate.computer/boundstr/config"
	"gate.computer/boundstr/errors"
	"gate.computer/boundstr/internal"
	"gate.computer/boundstr/internal/pan"
)

// Format renders template into b, replacing its content.  The count of bytes
// written is returned.
//
// If the rendered text exceeds buffer capacity, the error policy fails with
// errors.ErrCapacity and the truncate policy stores a prefix, returning the
// capacity as the count.  The buffer is not modified when an error is
// returned.
func Format(b *buffer.Buffer, template string, args ...interface{}) (n int, err error) {
	cfg := b.Config()
	if cfg == nil {
		err = errors.ErrNullArgument
		return
	}

	if internal.DontPanic() {
		defer func() {
			if x := recover(); x != nil {
				n = 0
				err = pan.Error(x)
			}
		}()
	}

	need := measure(cfg, template, args)

	return b.Render(need, func(dst []byte) int {
		w := clip{dst: dst}
		render(&w, noLimit, template, args)
		return w.written()
	})
}

// noLimit disables the maximum length check when rendering measured output.
// The destination bounds the writes.
const noLimit = -1

// Measure the length of template rendered with args, at unlimited capacity.
// The default configuration determines allowed conversions and maximum
// length.
func Measure(template string, args ...interface{}) (n int, err error) {
	return MeasureConfig(nil, template, args...)
}

// MeasureConfig is like Measure.  Default configuration is used if cfg is
// nil.
func MeasureConfig(cfg *config.Config, template string, args ...interface{}) (n int, err error) {
	if cfg == nil {
		cfg = config.Default()
	}

	if internal.DontPanic() {
		defer func() { err = pan.Error(recover()) }()
	}

	n = measure(cfg, template, args)
	return
}

func measure(cfg *config.Config, template string, args []interface{}) int {
	if cfg.Validate {
		validate(cfg.Specifiers, template)
	}

	var c counter
	render(&c, cfg.MaxSize, template, args)
	return c.Count()
}
