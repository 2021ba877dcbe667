// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors exports the error values returned by buffer and format
// operations without unnecessary dependencies.
//
// Detailed errors wrap one of the sentinel values, so they can be matched with
// errors.Is.  Each sentinel also implements a marker method, which can be used
// for classification through an interface type assertion.
package errors

// NullArgument indicates that a required buffer, storage or source is absent.
type NullArgument interface {
	error
	NullArgument() string
}

// CapacityError indicates that an operation would exceed buffer capacity
// under the error policy, or that a size is outside the configured range.
type CapacityError interface {
	error
	BufferSizeLimit() string
}

// FormatError indicates that a template contains a disallowed or malformed
// conversion, or that rendering it with the given arguments failed.
type FormatError interface {
	error
	FormatError() string
}

// ArgumentError indicates that an argument value is unusable for the
// operation.  Format argument errors are also format errors.
type ArgumentError interface {
	error
	ArgumentError() string
}

type nullError string

func (s nullError) Error() string        { return string(s) }
func (s nullError) NullArgument() string { return string(s) }

type sizeError string

func (s sizeError) Error() string           { return string(s) }
func (s sizeError) BufferSizeLimit() string { return string(s) }

type formatError string

func (s formatError) Error() string       { return string(s) }
func (s formatError) FormatError() string { return string(s) }

type argumentError string

func (s argumentError) Error() string         { return string(s) }
func (s argumentError) ArgumentError() string { return string(s) }

var (
	ErrNullArgument error = nullError("required argument is absent")
	ErrCapacity     error = sizeError("buffer capacity exceeded")
	ErrFormat       error = formatError("invalid format template")
	ErrArgument     error = argumentError("invalid argument")
)

type wrappedError struct {
	text  string
	cause error
}

// Wrap an error kind with a more specific message.
func Wrap(cause error, text string) error {
	return &wrappedError{text, cause}
}

func (e *wrappedError) Error() string { return e.text }
func (e *wrappedError) Unwrap() error { return e.cause }
