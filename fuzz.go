// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gofuzz

package boundstr

import (
	"gate.computer/boundstr/buffer"
	"gate.computer/boundstr/internal/test/fuzzutil"
)

// Fuzz takes storage size and config selector from the first byte, and the
// rest as template.
func Fuzz(data []byte) int {
	if len(data) == 0 {
		return -1
	}

	cfg := &fuzzutil.Configs[data[0]&1]
	storage := make([]byte, int(data[0]>>1)+1)

	b, err := buffer.NewConfig(cfg, storage)
	if err != nil {
		panic(err)
	}

	n, err := fuzzutil.Format(b, string(data[1:]))
	fuzzutil.CheckInvariant(b, storage)

	result, ok := fuzzutil.Result(err)
	if !ok {
		panic(err)
	}
	if err == nil && n != b.Len() {
		panic("format count differs from buffer length")
	}
	return result
}
