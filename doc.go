// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boundstr provides bounds-checked replacements for strcpy, strcat and
// snprintf over caller-owned byte slices.
//
// # Buffers
//
// Package buffer implements the fixed-capacity string buffer which the
// functions of this package are built on.  It never allocates: content lives
// in storage supplied by the caller, one byte of which is reserved for the
// terminator.  Package region can supply storage from a memory mapping.
//
// # Formatting
//
// Package format validates printf-style templates against an allowed set of
// conversions and renders them into buffers.  Floating-point and pointer
// conversions are rejected by default.
//
// # Configuration
//
// Overflow policy, allowed conversions and size ceiling are read from the
// environment once per process; see package config.  Buffers created with an
// explicit configuration are not affected by the environment.
//
// # Errors
//
// Error values are defined in package errors.  Operations fail with
// ErrNullArgument when storage or source is absent, ErrCapacity when the
// result would not fit under the error policy, and ErrFormat when a template
// or its arguments are rejected.  Under the truncate policy overflow is not an
// error; the result is a terminated prefix whose length equals capacity.
package boundstr
