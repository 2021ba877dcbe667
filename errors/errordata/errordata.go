// Copyright (c) 2022 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errordata helps with error serialization.
package errordata

import (
	"gate.computer/boundstr/errors"
	"gate.computer/boundstr/format"
	"golang.org/x/xerrors"
)

// Error kinds.
const (
	KindNullArgument = "null_argument"
	KindCapacity     = "capacity"
	KindArgument     = "argument"
	KindFormat       = "format"
)

// Internal details of an error.
type Internal struct {
	Error  string  `json:"error,omitempty"` // Omitted if same as public error.
	Public *Public `json:"public,omitempty"`
}

// Deconstruct an error on best-effort basis.
func Deconstruct(err error) *Internal {
	if pub := deconstructPublic(err); pub != nil {
		x := &Internal{
			Public: pub,
		}
		if s := err.Error(); s != pub.Error {
			x.Error = s
		}
		return x
	}

	return &Internal{
		Error: err.Error(),
	}
}

// GetPublic representation which is well-formed even if there are no public
// details.
func (x *Internal) GetPublic() *Public {
	if x.Public != nil {
		return x.Public
	}

	return &Public{
		Error: "internal error",
	}
}

// Reconstruct an error.
func (x *Internal) Reconstruct() error {
	if x.Public == nil {
		return xerrors.New(x.Error)
	}

	s := x.Public.Error
	if x.Error != "" {
		s = x.Error
	}
	return reconstructError(s, x.Public)
}

// Public details of an error.
type Public struct {
	Error    string    `json:"error"`
	Kind     string    `json:"kind,omitempty"`
	Template *Template `json:"template,omitempty"`
}

// Reconstruct an error without internal details.
func (x *Public) Reconstruct() error {
	return reconstructError(x.Error, x)
}

// Template error details.
type Template struct {
	Offset   int    `json:"offset"`
	Argument *int   `json:"argument,omitempty"`
	Reason   string `json:"reason"`
}

func deconstructPublic(err error) (pub *Public) {
	var (
		null     errors.NullArgument
		capacity errors.CapacityError
		argument errors.ArgumentError
		invalid  errors.FormatError
	)

	switch {
	case xerrors.As(err, &null):
		pub = &Public{Error: null.NullArgument(), Kind: KindNullArgument}

	case xerrors.As(err, &capacity):
		pub = &Public{Error: capacity.BufferSizeLimit(), Kind: KindCapacity}

	case xerrors.As(err, &argument):
		pub = &Public{Error: argument.ArgumentError(), Kind: KindArgument}

	case xerrors.As(err, &invalid):
		pub = &Public{Error: invalid.FormatError(), Kind: KindFormat}

	default:
		return
	}

	pub.Template = deconstructTemplate(err)
	return
}

func deconstructTemplate(err error) *Template {
	var a *format.ArgumentError
	if xerrors.As(err, &a) {
		index := a.Index
		return &Template{
			Offset:   a.Offset,
			Argument: &index,
			Reason:   a.Reason,
		}
	}

	var t *format.TemplateError
	if xerrors.As(err, &t) {
		return &Template{
			Offset: t.Offset,
			Reason: t.Reason,
		}
	}

	return nil
}

func reconstructError(s string, x *Public) error {
	if t := x.Template; t != nil {
		if t.Argument != nil {
			return &format.ArgumentError{Index: *t.Argument, Offset: t.Offset, Reason: t.Reason}
		}
		return &format.TemplateError{Offset: t.Offset, Reason: t.Reason}
	}

	var kind error
	switch x.Kind {
	case KindNullArgument:
		kind = errors.ErrNullArgument
	case KindCapacity:
		kind = errors.ErrCapacity
	case KindArgument:
		kind = errors.ErrArgument
	case KindFormat:
		kind = errors.ErrFormat
	default:
		return xerrors.New(s)
	}

	if s == kind.Error() {
		return kind
	}
	return errors.Wrap(kind, s)
}
