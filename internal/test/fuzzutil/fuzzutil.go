// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fuzzutil

import (
	"fmt"

	"gate.computer/boundstr/buffer"
	"gate.computer/boundstr/config"
	"gate.computer/boundstr/errors"
	"gate.computer/boundstr/format"
	"golang.org/x/xerrors"
)

// Configs for fuzzing: error policy with the default conversions, and
// truncate policy with every supported conversion.
var Configs = [...]config.Config{
	{Policy: config.Error, Specifiers: config.DefaultSpecifiers, MaxSize: 1 << 16, Validate: true},
	{Policy: config.Truncate, Specifiers: "diuxXscofFeEgGp%", MaxSize: 1 << 16, Validate: true},
}

var args = [...]interface{}{
	int64(-12345),
	"fuzz",
	byte('z'),
	uint32(0xdeadbeef),
	3.5,
}

// Format template with arguments cycling through a fixed set.  The argument
// count is the number of percent signs, so most templates get surplus
// arguments or ones of the wrong type; both are expected errors.
func Format(b *buffer.Buffer, template string) (int, error) {
	var list []interface{}
	for i := 0; i < len(template); i++ {
		if template[i] == '%' {
			list = append(list, args[len(list)%len(args)])
		}
	}
	return format.Format(b, template, list...)
}

// CheckInvariant panics if b is not terminated within storage.
func CheckInvariant(b *buffer.Buffer, storage []byte) {
	if b.Len() > b.Cap() {
		panic(fmt.Sprintf("length %d exceeds capacity %d", b.Len(), b.Cap()))
	}
	if storage[b.Len()] != 0 {
		panic(fmt.Sprintf("no terminator at offset %d", b.Len()))
	}
}

// Result maps an error to a go-fuzz return value.  ok is false for errors
// which buffer or format operations must not return.
func Result(err error) (result int, ok bool) {
	switch {
	case err == nil:
		result = 1
		ok = true

	case xerrors.Is(err, errors.ErrFormat), xerrors.Is(err, errors.ErrCapacity):
		result = 0
		ok = true
	}

	return
}
