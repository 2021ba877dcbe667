// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"gate.computer/boundstr/config"
	"gate.computer/boundstr/errors"
	"golang.org/x/xerrors"
)

func testConfig(p config.Policy) *config.Config {
	c := config.Builtin()
	c.Policy = p
	return &c
}

var (
	errorConfig    = testConfig(config.Error)
	truncateConfig = testConfig(config.Truncate)
)

// newBuffer over storage filled with garbage.
func newBuffer(t *testing.T, cfg *config.Config, size int) (*Buffer, []byte) {
	t.Helper()

	storage := bytes.Repeat([]byte{'#'}, size)

	b, err := NewConfig(cfg, storage)
	if err != nil {
		t.Fatal(err)
	}
	return b, storage
}

func checkTerminated(t *testing.T, b *Buffer, storage []byte) {
	t.Helper()

	if b.Len() > b.Cap() {
		t.Fatalf("length %d exceeds capacity %d", b.Len(), b.Cap())
	}
	if storage[b.Len()] != 0 {
		t.Errorf("no terminator at offset %d", b.Len())
	}
	if c := b.CString(); len(c) != b.Len()+1 || c[b.Len()] != 0 {
		t.Errorf("CString: %q", c)
	}
}

func checkContent(t *testing.T, b *Buffer, storage []byte, expect string) {
	t.Helper()

	if s := b.String(); s != expect {
		t.Errorf("content %q, expected %q", s, expect)
	}
	if b.Len() != len(expect) {
		t.Errorf("length %d, expected %d", b.Len(), len(expect))
	}
	checkTerminated(t, b, storage)
}

func TestNew(t *testing.T) {
	for size := 1; size <= 33; size += 4 {
		b, storage := newBuffer(t, errorConfig, size)

		if b.Cap() != size-1 {
			t.Errorf("size %d: capacity %d", size, b.Cap())
		}
		checkContent(t, b, storage, "")
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil); err != errors.ErrNullArgument {
		t.Error(err)
	}

	if _, err := New([]byte{}); !xerrors.Is(err, errors.ErrCapacity) {
		t.Error(err)
	}

	cfg := config.Builtin()
	cfg.MaxSize = 4

	if _, err := NewConfig(&cfg, make([]byte, 6)); !xerrors.Is(err, errors.ErrCapacity) {
		t.Error(err)
	}
	if _, err := NewConfig(&cfg, make([]byte, 5)); err != nil {
		t.Error(err)
	}
}

func TestZeroBuffer(t *testing.T) {
	var zero Buffer
	var nilBuf *Buffer

	for _, b := range []*Buffer{&zero, nilBuf} {
		if err := b.Clear(); err != errors.ErrNullArgument {
			t.Error(err)
		}
		if err := b.CopyString("x"); err != errors.ErrNullArgument {
			t.Error(err)
		}
		if err := b.AppendString("x"); err != errors.ErrNullArgument {
			t.Error(err)
		}
		if _, err := b.Write([]byte("x")); err != errors.ErrNullArgument {
			t.Error(err)
		}
		if b.Len() != 0 || b.Cap() != 0 || b.Bytes() != nil || b.CString() != nil {
			t.Error("zero buffer has content")
		}
	}

	good, _ := newBuffer(t, errorConfig, 8)

	if err := good.CopyBuffer(nilBuf); err != errors.ErrNullArgument {
		t.Error(err)
	}
	if err := good.AppendBuffer(&zero); err != errors.ErrNullArgument {
		t.Error(err)
	}
}

func TestClear(t *testing.T) {
	b, storage := newBuffer(t, errorConfig, 16)

	if err := b.CopyString("hello"); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if err := b.Clear(); err != nil {
			t.Fatal(err)
		}
		checkContent(t, b, storage, "")
	}
}

func TestCopy(t *testing.T) {
	b, storage := newBuffer(t, errorConfig, 16)

	for _, s := range []string{"hello", "", "0123456789abcde", "x"} {
		if err := b.CopyString(s); err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		checkContent(t, b, storage, s)
	}

	if err := b.Copy([]byte("ab\x00cd")); err != nil {
		t.Fatal(err)
	}
	checkContent(t, b, storage, "ab")

	if err := b.Copy(nil); err != errors.ErrNullArgument {
		t.Error(err)
	}
	checkContent(t, b, storage, "ab")
}

func TestCopyOverflow(t *testing.T) {
	b, storage := newBuffer(t, errorConfig, 8)

	if err := b.CopyString("abc"); err != nil {
		t.Fatal(err)
	}

	if err := b.CopyString("0123456789"); err != errors.ErrCapacity {
		t.Error(err)
	}
	checkContent(t, b, storage, "abc")

	if err := b.Copy([]byte("01234567")); err != errors.ErrCapacity {
		t.Error(err)
	}
	checkContent(t, b, storage, "abc")

	// Terminator within capacity+1 bytes.
	if err := b.Copy([]byte("0123456\x00789")); err != nil {
		t.Error(err)
	}
	checkContent(t, b, storage, "0123456")
}

func TestCopyTruncate(t *testing.T) {
	b, storage := newBuffer(t, truncateConfig, 8)

	if err := b.CopyString("0123456789"); err != nil {
		t.Fatal(err)
	}
	checkContent(t, b, storage, "0123456")

	if err := b.CopyString("ab"); err != nil {
		t.Fatal(err)
	}
	checkContent(t, b, storage, "ab")
}

func TestCopyN(t *testing.T) {
	b, storage := newBuffer(t, errorConfig, 8)

	if err := b.CopyN([]byte("ab\x00cdef"), 5); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), []byte("ab\x00cd")) {
		t.Errorf("%q", b.Bytes())
	}
	checkTerminated(t, b, storage)

	for _, n := range []int{-1, 8} {
		if err := b.CopyN([]byte("abcdefg"), n); !xerrors.Is(err, errors.ErrArgument) {
			t.Errorf("%d: %v", n, err)
		}
	}

	if err := b.CopyN([]byte("0123456789"), 8); err != errors.ErrCapacity {
		t.Error(err)
	}
	if b.Len() != 5 {
		t.Error(b.Len())
	}

	if err := b.CopyN(nil, 0); err != errors.ErrNullArgument {
		t.Error(err)
	}

	tb, tstorage := newBuffer(t, truncateConfig, 4)

	if err := tb.CopyN([]byte("0123456789"), 9); err != nil {
		t.Fatal(err)
	}
	checkContent(t, tb, tstorage, "012")

	cfg := *truncateConfig
	cfg.MaxSize = 4

	sb, _ := newBuffer(t, &cfg, 5)

	if err := sb.CopyN([]byte("0123456789"), 5); !xerrors.Is(err, errors.ErrArgument) {
		t.Error(err)
	}
	if err := sb.CopyN([]byte("0123456789"), 4); err != nil {
		t.Error(err)
	}
}

func TestCopyBuffer(t *testing.T) {
	src, _ := newBuffer(t, errorConfig, 32)
	if err := src.CopyString("source text"); err != nil {
		t.Fatal(err)
	}

	b, storage := newBuffer(t, errorConfig, 16)

	if err := b.CopyBuffer(src); err != nil {
		t.Fatal(err)
	}
	checkContent(t, b, storage, "source text")

	if err := b.CopyBuffer(b); err != nil {
		t.Fatal(err)
	}
	checkContent(t, b, storage, "source text")

	small, smallStorage := newBuffer(t, errorConfig, 4)
	if err := small.CopyString("abc"); err != nil {
		t.Fatal(err)
	}

	if err := small.CopyBuffer(src); err != errors.ErrCapacity {
		t.Error(err)
	}
	checkContent(t, small, smallStorage, "abc")

	clipped, clippedStorage := newBuffer(t, truncateConfig, 7)

	if err := clipped.CopyBuffer(src); err != nil {
		t.Fatal(err)
	}
	checkContent(t, clipped, clippedStorage, "source")
}

func TestAppend(t *testing.T) {
	b, storage := newBuffer(t, errorConfig, 10)

	var expect string

	for _, s := range []string{"foo", "", "bar", "baz"} {
		if err := b.AppendString(s); err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		expect += s
		checkContent(t, b, storage, expect)
	}

	if err := b.AppendString("x"); err != errors.ErrCapacity {
		t.Error(err)
	}
	checkContent(t, b, storage, expect)

	if err := b.Append([]byte("\x00ignored")); err != nil {
		t.Error(err)
	}
	checkContent(t, b, storage, expect)

	if err := b.Append(nil); err != errors.ErrNullArgument {
		t.Error(err)
	}
}

func TestAppendOverflow(t *testing.T) {
	b, storage := newBuffer(t, errorConfig, 8)

	if err := b.AppendString("abcd"); err != nil {
		t.Fatal(err)
	}

	if err := b.AppendString("efgh"); err != errors.ErrCapacity {
		t.Error(err)
	}
	checkContent(t, b, storage, "abcd")

	if err := b.AppendString("efg"); err != nil {
		t.Error(err)
	}
	checkContent(t, b, storage, "abcdefg")
}

func TestAppendTruncate(t *testing.T) {
	b, storage := newBuffer(t, truncateConfig, 8)

	for _, s := range []string{"abcd", "efgh", "ijkl"} {
		if err := b.AppendString(s); err != nil {
			t.Fatal(err)
		}
	}
	checkContent(t, b, storage, "abcdefg")
}

func TestAppendBuffer(t *testing.T) {
	b, storage := newBuffer(t, errorConfig, 8)

	if err := b.CopyString("ab"); err != nil {
		t.Fatal(err)
	}

	if err := b.AppendBuffer(b); err != nil {
		t.Fatal(err)
	}
	checkContent(t, b, storage, "abab")

	if err := b.AppendBuffer(b); err != errors.ErrCapacity {
		t.Error(err)
	}
	checkContent(t, b, storage, "abab")

	tb, tstorage := newBuffer(t, truncateConfig, 8)

	if err := tb.CopyString("abcd"); err != nil {
		t.Fatal(err)
	}
	if err := tb.AppendBuffer(tb); err != nil {
		t.Fatal(err)
	}
	checkContent(t, tb, tstorage, "abcdabc")
}

func TestWrite(t *testing.T) {
	b, storage := newBuffer(t, errorConfig, 16)

	if _, err := fmt.Fprintf(b, "%d-%s", 42, "x"); err != nil {
		t.Fatal(err)
	}
	checkContent(t, b, storage, "42-x")

	if n, err := b.Write([]byte("\x00z")); n != 2 || err != nil {
		t.Error(n, err)
	}
	if !bytes.Equal(b.Bytes(), []byte("42-x\x00z")) {
		t.Errorf("%q", b.Bytes())
	}
	checkTerminated(t, b, storage)

	if n, err := b.WriteString("0123456789"); n != 0 || err != errors.ErrCapacity {
		t.Error(n, err)
	}
	if b.Len() != 6 {
		t.Error(b.Len())
	}

	tb, tstorage := newBuffer(t, truncateConfig, 6)

	if n, err := tb.WriteString("0123456789"); n != 5 || err != io.ErrShortWrite {
		t.Error(n, err)
	}
	checkContent(t, tb, tstorage, "01234")
}

func TestPutByte(t *testing.T) {
	b, storage := newBuffer(t, errorConfig, 3)

	for _, c := range []byte("ab") {
		if err := b.PutByte(c); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.PutByte('c'); err != errors.ErrCapacity {
		t.Error(err)
	}
	checkContent(t, b, storage, "ab")

	tb, tstorage := newBuffer(t, truncateConfig, 2)

	for _, c := range []byte("xyz") {
		if err := tb.PutByte(c); err != nil {
			t.Fatal(err)
		}
	}
	checkContent(t, tb, tstorage, "x")
}

func TestRender(t *testing.T) {
	b, storage := newBuffer(t, errorConfig, 8)

	if err := b.CopyString("keep"); err != nil {
		t.Fatal(err)
	}

	called := false

	if _, err := b.Render(8, func([]byte) int { called = true; return 0 }); err != errors.ErrCapacity {
		t.Error(err)
	}
	if called {
		t.Error("fill called on overflow")
	}
	checkContent(t, b, storage, "keep")

	n, err := b.Render(3, func(dst []byte) int {
		if len(dst) != 3 {
			t.Errorf("dst length %d", len(dst))
		}
		return copy(dst, "xyz")
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Error(n)
	}
	checkContent(t, b, storage, "xyz")

	if _, err := b.Render(-1, func([]byte) int { return 0 }); !xerrors.Is(err, errors.ErrArgument) {
		t.Error(err)
	}
	if _, err := b.Render(1, nil); err != errors.ErrNullArgument {
		t.Error(err)
	}
}

func TestRenderTruncate(t *testing.T) {
	b, storage := newBuffer(t, truncateConfig, 8)

	n, err := b.Render(100, func(dst []byte) int {
		for i := range dst {
			dst[i] = 'a'
		}
		return 100
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != b.Cap() {
		t.Error(n)
	}
	checkContent(t, b, storage, "aaaaaaa")

	if storage[len(storage)-1] != 0 {
		t.Error("storage end not terminated")
	}
}

func TestRenderPanic(t *testing.T) {
	b, storage := newBuffer(t, errorConfig, 8)

	if err := b.CopyString("ab"); err != nil {
		t.Fatal(err)
	}

	func() {
		defer func() {
			if x := recover(); x != "fill failed" {
				t.Error(x)
			}
		}()

		b.Render(5, func(dst []byte) int {
			copy(dst, "zzzzz")
			panic("fill failed")
		})
	}()

	if b.Len() != 2 || storage[b.Len()] != 0 {
		t.Errorf("length %d, storage %q", b.Len(), storage)
	}
}

func TestAttach(t *testing.T) {
	storage := []byte("ab\x00zz")

	b, err := Attach(errorConfig, storage)
	if err != nil {
		t.Fatal(err)
	}
	checkContent(t, b, storage, "ab")

	if err := b.AppendString("cd"); err != nil {
		t.Fatal(err)
	}
	checkContent(t, b, storage, "abcd")

	if _, err := Attach(errorConfig, []byte("abcd")); !xerrors.Is(err, errors.ErrArgument) {
		t.Error(err)
	}
	if _, err := Attach(errorConfig, nil); err != errors.ErrNullArgument {
		t.Error(err)
	}
}

func TestScan(t *testing.T) {
	for _, c := range []struct {
		src    string
		limit  int
		expect int
	}{
		{"", 0, 0},
		{"a", 0, 1},
		{"abc", 3, 3},
		{"abcdef", 3, 4},
		{"ab\x00", 3, 2},
		{"abc\x00", 2, 3},
		{"\x00abc", 2, 0},
	} {
		if n := scan(c.src, c.limit); n != c.expect {
			t.Errorf("scan(%q, %d) = %d, expected %d", c.src, c.limit, n, c.expect)
		}
		if n := scan([]byte(c.src), c.limit); n != c.expect {
			t.Errorf("scan(%q, %d) = %d, expected %d", c.src, c.limit, n, c.expect)
		}
	}
}
