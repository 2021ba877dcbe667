// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"strconv"
	"strings"

	"gate.computer/boundstr/config"
	"gate.computer/boundstr/internal"
	"gate.computer/boundstr/internal/pan"
)

// Validate template against the default configuration's allowed specifiers.
func Validate(template string) error {
	return ValidateConfig(nil, template)
}

// ValidateConfig checks that every conversion in template is well-formed and
// uses an allowed specifier.  Flags, width, precision and length modifier
// are skipped without further checks.  Default configuration is used if cfg
// is nil.  The Validate field of the configuration is not consulted.
func ValidateConfig(cfg *config.Config, template string) (err error) {
	if cfg == nil {
		cfg = config.Default()
	}

	if internal.DontPanic() {
		defer func() { err = pan.Error(recover()) }()
	}

	validate(cfg.Specifiers, template)
	return
}

func validate(allowed config.Specifiers, template string) {
	for i := 0; ; {
		j := strings.IndexByte(template[i:], '%')
		if j < 0 {
			return
		}

		d, next := parseDirective(template, i+j)
		if !d.literal && !allowed.Contains(d.verb) {
			pan.Panic(templateError(d.offset, "disallowed conversion "+strconv.QuoteRuneToASCII(rune(d.verb))))
		}

		i = next
	}
}
