// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boundstr

import (
	"strings"

	"gate.computer/boundstr/buffer"
	"gate.computer/boundstr/config"
	"gate.computer/boundstr/errors"
	"gate.computer/boundstr/format"
)

// Strcpy copies src into dst, up to the first NUL byte of src, and
// terminates dst.  The length of the result is returned.  dst is not modified
// when an error is returned.
func Strcpy(dst []byte, src string) (int, error) {
	if i := strings.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	if err := checkFit(dst, len(src)); err != nil {
		return 0, err
	}

	b, err := buffer.New(dst)
	if err != nil {
		return 0, err
	}

	if err := b.CopyString(src); err != nil {
		return 0, err
	}
	return b.Len(), nil
}

// Strcat appends src to the NUL-terminated string in dst.  The length of the
// result is returned.  dst is not modified when an error is returned.
func Strcat(dst []byte, src string) (int, error) {
	b, err := buffer.Attach(nil, dst)
	if err != nil {
		return 0, err
	}

	if err := b.AppendString(src); err != nil {
		return 0, err
	}
	return b.Len(), nil
}

// Snprintf renders template into dst and terminates it.  The count of bytes
// written is returned.  dst is not modified when an error is returned.  See
// package format for the template syntax.
func Snprintf(dst []byte, template string, args ...interface{}) (int, error) {
	n, err := format.Measure(template, args...)
	if err != nil {
		return 0, err
	}
	if err := checkFit(dst, n); err != nil {
		return 0, err
	}

	b, err := buffer.New(dst)
	if err != nil {
		return 0, err
	}

	return format.Format(b, template, args...)
}

// checkFit fails if n bytes don't fit in dst under the error policy.  Other
// problems with dst are left for buffer construction to report.
func checkFit(dst []byte, n int) error {
	if len(dst) > 0 && n > len(dst)-1 && config.Default().Policy == config.Error {
		return errors.ErrCapacity
	}
	return nil
}
