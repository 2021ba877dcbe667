// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"math"
	"strconv"

	"gate.computer/boundstr/internal/pan"
)

type flags uint8

const (
	flagMinus flags = 1 << iota
	flagPlus
	flagZero
	flagSpace
	flagHash
)

var flagChars = [...]byte{'-', '+', '0', ' ', '#'}

type lengthMod uint8

const (
	lengthNone lengthMod = iota
	lengthHH
	lengthH
	lengthL
	lengthLL
	lengthJ
	lengthZ
	lengthT
	lengthBigL
)

// bits returns the integer width implied by the modifier, or 0.
func (m lengthMod) bits() int {
	switch m {
	case lengthHH:
		return 8
	case lengthH:
		return 16
	case lengthL, lengthLL, lengthJ, lengthZ, lengthT:
		return 64
	default:
		return 0
	}
}

const maxDecimal = math.MaxInt32

// maxFmtField is the largest width or precision which package fmt accepts.
const maxFmtField = 1000000

// directive is a parsed conversion.
type directive struct {
	offset    int // Position of the introducing '%'.
	flags     flags
	width     int // Negative if absent.
	precision int // Negative if absent.
	length    lengthMod
	verb      byte
	literal   bool // Escaped percent sign.
}

func (d *directive) has(f flags) bool {
	return d.flags&f != 0
}

// parseDirective at template[offset], which must be '%'.  The position after
// the conversion character is returned.  Malformed directives panic with
// TemplateError.
func parseDirective(template string, offset int) (d directive, i int) {
	d = directive{
		offset:    offset,
		width:     -1,
		precision: -1,
	}

	i = offset + 1

	if i < len(template) && template[i] == '%' {
		d.verb = '%'
		d.literal = true
		i++
		return
	}

	if i == len(template) {
		pan.Panic(templateError(offset, "incomplete conversion"))
	}

flags:
	for ; i < len(template); i++ {
		switch template[i] {
		case '-':
			d.flags |= flagMinus
		case '+':
			d.flags |= flagPlus
		case '0':
			d.flags |= flagZero
		case ' ':
			d.flags |= flagSpace
		case '#':
			d.flags |= flagHash
		default:
			break flags
		}
	}

	if i < len(template) && isDigit(template[i]) {
		d.width, i = parseDecimal(template, i)
	}

	if i < len(template) && template[i] == '.' {
		d.precision, i = parseDecimal(template, i+1)
	}

	if i < len(template) {
		switch template[i] {
		case 'h':
			d.length = lengthH
			if i+1 < len(template) && template[i+1] == 'h' {
				d.length = lengthHH
				i++
			}
			i++
		case 'l':
			d.length = lengthL
			if i+1 < len(template) && template[i+1] == 'l' {
				d.length = lengthLL
				i++
			}
			i++
		case 'j':
			d.length = lengthJ
			i++
		case 'z':
			d.length = lengthZ
			i++
		case 't':
			d.length = lengthT
			i++
		case 'L':
			d.length = lengthBigL
			i++
		}
	}

	if i == len(template) {
		pan.Panic(templateError(offset, "incomplete conversion"))
	}

	d.verb = template[i]
	i++
	return
}

// parseDecimal digits, saturating.  Zero digits yield zero.
func parseDecimal(s string, i int) (n, next int) {
	for ; i < len(s) && isDigit(s[i]); i++ {
		if digit := int(s[i] - '0'); n > (maxDecimal-digit)/10 {
			n = maxDecimal
		} else {
			n = n*10 + digit
		}
	}
	next = i
	return
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// fmtDirective builds an equivalent directive for package fmt, with different verb
// and without some flags.
func (d *directive) fmtDirective(verb byte, drop flags) string {
	if d.width > maxFmtField || d.precision > maxFmtField {
		pan.Panic(templateError(d.offset, "field width or precision out of range"))
	}

	var buf [32]byte

	b := append(buf[:0], '%')

	for i, c := range flagChars {
		if f := flags(1) << uint(i); d.flags&f != 0 && drop&f == 0 {
			b = append(b, c)
		}
	}

	if d.width >= 0 {
		b = strconv.AppendInt(b, int64(d.width), 10)
	}
	if d.precision >= 0 {
		b = append(b, '.')
		b = strconv.AppendInt(b, int64(d.precision), 10)
	}

	b = append(b, verb)
	return string(b)
}
