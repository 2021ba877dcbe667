// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

type text interface {
	~string | ~[]byte
}

// scan returns the length of NUL-terminated src, or limit+1 if it is longer
// than limit.  At most limit+1 bytes are read.  A source without a terminator
// ends at its last byte.
func scan[T text](src T, limit int) int {
	end := len(src)
	if end > limit {
		end = limit + 1
	}

	for i := 0; i < end; i++ {
		if src[i] == 0 {
			return i
		}
	}

	return end
}

// store n bytes of src at offset.  Caller has checked that they fit.
func store[T text](b *Buffer, offset int, src T, n int) {
	copy(b.data[offset:offset+n], src)
	b.setLen(offset + n)
}
