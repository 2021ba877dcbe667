// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"reflect"
	"strconv"
)

type integer struct {
	bits   uint64 // Two's complement.
	size   int    // Width of the argument type.
	signed bool
	char   bool // Argument is a byte.
}

func (v integer) signedValue(size int) int64 {
	shift := uint(64 - size)
	return int64(v.bits<<shift) >> shift
}

func (v integer) unsignedValue(size int) uint64 {
	if size >= 64 {
		return v.bits
	}
	return v.bits & (uint64(1)<<uint(size) - 1)
}

func integerArg(arg interface{}) (v integer, ok bool) {
	switch x := arg.(type) {
	case int:
		return integer{uint64(x), strconv.IntSize, true, false}, true
	case int64:
		return integer{uint64(x), 64, true, false}, true
	case int32:
		return integer{uint64(x), 32, true, false}, true
	case uint:
		return integer{uint64(x), strconv.IntSize, false, false}, true
	case uint64:
		return integer{x, 64, false, false}, true
	case uint32:
		return integer{uint64(x), 32, false, false}, true
	case uint8:
		return integer{uint64(x), 8, false, true}, true
	}

	if arg == nil {
		return
	}

	rv := reflect.ValueOf(arg)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return integer{uint64(rv.Int()), rv.Type().Bits(), true, false}, true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return integer{rv.Uint(), rv.Type().Bits(), false, rv.Kind() == reflect.Uint8}, true
	}

	return
}

func floatArg(arg interface{}) (float64, bool) {
	switch x := arg.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	}

	if arg == nil {
		return 0, false
	}

	if rv := reflect.ValueOf(arg); rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		return rv.Float(), true
	}
	return 0, false
}

// stringArg accepts strings, byte slices, Stringers and errors.  Nil values
// are rejected.
func stringArg(arg interface{}) (string, bool) {
	switch x := arg.(type) {
	case string:
		return x, true

	case []byte:
		return string(x), x != nil

	case fmt.Stringer:
		if isNil(x) {
			return "", false
		}
		return x.String(), true

	case error:
		if isNil(x) {
			return "", false
		}
		return x.Error(), true
	}

	if arg == nil {
		return "", false
	}

	switch rv := reflect.ValueOf(arg); rv.Kind() {
	case reflect.String:
		return rv.String(), true

	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 && !rv.IsNil() {
			return string(rv.Bytes()), true
		}
	}

	return "", false
}

func pointerArg(arg interface{}) (uint64, bool) {
	if arg == nil {
		return 0, false
	}

	switch rv := reflect.ValueOf(arg); rv.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		return uint64(rv.Pointer()), true

	case reflect.Uintptr:
		return rv.Uint(), true
	}

	return 0, false
}

func isNil(x interface{}) bool {
	switch rv := reflect.ValueOf(x); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
