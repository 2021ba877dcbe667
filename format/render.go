// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"gate.computer/boundstr/internal/debug"
	"gate.computer/boundstr/internal/pan"
)

const spaces = "                                                                "

// render template with args.  Output longer than limit panics with
// TemplateError, as do unsupported conversions; unusable arguments panic with
// ArgumentError.  Negative limit is unlimited.
func render(w sink, limit int, template string, args []interface{}) {
	index := 0

	for i := 0; i < len(template); {
		j := strings.IndexByte(template[i:], '%')
		if j < 0 {
			j = len(template) - i
		}

		w.WriteString(template[i : i+j])
		checkLimit(w, limit, i)

		i += j
		if i == len(template) {
			break
		}

		d, next := parseDirective(template, i)
		i = next

		if d.verb == '%' {
			w.WriteByte('%')
			continue
		}

		if index == len(args) {
			pan.Panic(argumentError(index, d.offset, "missing argument"))
		}

		reserve := d.width
		if d.precision > reserve && d.verb != 's' {
			reserve = d.precision
		}
		if limit >= 0 && w.Count() > limit-reserve {
			pan.Panic(templateError(d.offset, "rendered length exceeds maximum"))
		}

		if debug.Enabled {
			debug.Printf("format: %s at offset %d: %T", d.fmtDirective(d.verb, 0), d.offset, args[index])
		}

		convert(w, &d, args[index], index)
		checkLimit(w, limit, d.offset)
		index++
	}

	if index < len(args) {
		pan.Panic(argumentError(index, -1, "surplus argument"))
	}
}

func checkLimit(w sink, limit, offset int) {
	if limit >= 0 && w.Count() > limit {
		pan.Panic(templateError(offset, "rendered length exceeds maximum"))
	}
}

func convert(w sink, d *directive, arg interface{}, index int) {
	switch d.verb {
	case 'd', 'i':
		v := intConversion(d, arg, index)
		size := d.length.bits()
		if size == 0 {
			size = v.size
		}

		if v.signed || d.length != lengthNone {
			fmt.Fprintf(w, d.fmtDirective('d', 0), v.signedValue(size))
		} else {
			fmt.Fprintf(w, d.fmtDirective('d', flagHash), v.unsignedValue(size))
		}

	case 'u', 'x', 'X', 'o':
		v := intConversion(d, arg, index)
		size := d.length.bits()
		if size == 0 {
			size = v.size
		}

		u := v.unsignedValue(size)

		drop := flagPlus | flagSpace
		if u == 0 && d.verb != 'o' {
			drop |= flagHash
		}

		verb := d.verb
		if verb == 'u' {
			verb = 'd'
			drop |= flagHash
		}

		fmt.Fprintf(w, d.fmtDirective(verb, drop), u)

	case 'c':
		v, ok := integerArg(arg)
		if !ok {
			pan.Panic(argumentError(index, d.offset, fmt.Sprintf("%%c expects integer, got %T", arg)))
		}

		if v.char {
			pad(w, d, string([]byte{byte(v.bits)}))
		} else {
			r := rune(v.signedValue(32))
			if !utf8.ValidRune(r) {
				pan.Panic(argumentError(index, d.offset, "invalid character value"))
			}
			pad(w, d, string(r))
		}

	case 's':
		s, ok := stringArg(arg)
		if !ok {
			pan.Panic(argumentError(index, d.offset, fmt.Sprintf("%%s expects string, got %T", arg)))
		}

		if d.precision >= 0 && len(s) > d.precision {
			s = s[:d.precision]
		}
		pad(w, d, s)

	case 'f', 'F', 'e', 'E', 'g', 'G':
		f, ok := floatArg(arg)
		if !ok {
			pan.Panic(argumentError(index, d.offset, fmt.Sprintf("%%%c expects floating-point number, got %T", d.verb, arg)))
		}

		verb := d.verb
		if verb == 'F' {
			verb = 'f'
		}
		fmt.Fprintf(w, d.fmtDirective(verb, 0), f)

	case 'p':
		p, ok := pointerArg(arg)
		if !ok {
			pan.Panic(argumentError(index, d.offset, fmt.Sprintf("%%p expects pointer, got %T", arg)))
		}

		pad(w, d, "0x"+strconv.FormatUint(p, 16))

	default:
		pan.Panic(templateError(d.offset, "unsupported conversion "+strconv.QuoteRuneToASCII(rune(d.verb))))
	}
}

func intConversion(d *directive, arg interface{}, index int) integer {
	if d.length == lengthBigL {
		pan.Panic(templateError(d.offset, "length modifier 'L' with integer conversion"))
	}

	v, ok := integerArg(arg)
	if !ok {
		pan.Panic(argumentError(index, d.offset, fmt.Sprintf("%%%c expects integer, got %T", d.verb, arg)))
	}
	return v
}

// pad s with spaces to field width.  Width is counted in bytes.
func pad(w sink, d *directive, s string) {
	n := d.width - len(s)

	if !d.has(flagMinus) {
		writeSpaces(w, n)
	}
	w.WriteString(s)
	if d.has(flagMinus) {
		writeSpaces(w, n)
	}
}

func writeSpaces(w sink, n int) {
	for n > 0 {
		chunk := n
		if chunk > len(spaces) {
			chunk = len(spaces)
		}
		w.WriteString(spaces[:chunk])
		n -= chunk
	}
}
