// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"

	"gate.computer/boundstr/errors"
)

// TemplateError describes a rejected conversion.  It wraps errors.ErrFormat.
type TemplateError struct {
	Offset int // Position of the introducing '%' character.
	Reason string
}

func templateError(offset int, reason string) *TemplateError {
	return &TemplateError{offset, reason}
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("format: %s at offset %d", e.Reason, e.Offset)
}

func (e *TemplateError) FormatError() string { return e.Error() }
func (e *TemplateError) Unwrap() error       { return errors.ErrFormat }

// ArgumentError describes an argument which cannot be rendered by its
// conversion.  It matches both errors.ErrFormat and errors.ErrArgument.
type ArgumentError struct {
	Index  int // Argument position.
	Offset int // Position of the conversion in template, or -1 for surplus arguments.
	Reason string
}

func argumentError(index, offset int, reason string) *ArgumentError {
	return &ArgumentError{index, offset, reason}
}

func (e *ArgumentError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("format: argument %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("format: argument %d: %s at offset %d", e.Index, e.Reason, e.Offset)
}

func (e *ArgumentError) FormatError() string   { return e.Error() }
func (e *ArgumentError) ArgumentError() string { return e.Error() }

func (e *ArgumentError) Is(target error) bool {
	return target == errors.ErrFormat || target == errors.ErrArgument
}
