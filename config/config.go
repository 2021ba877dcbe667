// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the process-wide behavior of bounded buffers and
// template rendering.
//
// The default configuration is resolved once, on first use, from the
// environment:
//
//	BOUNDSTR_POLICY      error (default) or truncate
//	BOUNDSTR_SPECIFIERS  allowed conversion characters (default "diuxXsc%")
//	BOUNDSTR_MAX_SIZE    size ceiling (default 2147483647)
//	BOUNDSTR_VALIDATE    0 disables template validation
//
// It must not be modified after that.  Buffers keep a pointer to the
// configuration they were created with.
package config

import (
	"strconv"
	"strings"
	"sync"

	"github.com/xyproto/env/v2"
	"golang.org/x/xerrors"
)

// Policy for operations which would exceed buffer capacity.
type Policy int

const (
	Error    Policy = iota // Reject the operation, leaving the buffer unchanged.
	Truncate               // Clip content to capacity.
)

func (p Policy) String() string {
	switch p {
	case Error:
		return "error"

	case Truncate:
		return "truncate"

	default:
		return "policy(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePolicy accepts the names returned by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return Error, nil

	case "truncate":
		return Truncate, nil

	default:
		return Error, xerrors.Errorf("unknown overflow policy: %q", s)
	}
}

// Specifiers is a set of conversion characters.
type Specifiers string

// DefaultSpecifiers excludes floating-point and pointer conversions.
const DefaultSpecifiers Specifiers = "diuxXsc%"

// Contains reports whether c is a member of the set.
func (s Specifiers) Contains(c byte) bool {
	return strings.IndexByte(string(s), c) >= 0
}

// DefaultMaxSize guards size arithmetic against overflow.
const DefaultMaxSize = 0x7fffffff

// Config of buffer and format operations.
type Config struct {
	Policy     Policy
	Specifiers Specifiers
	MaxSize    int  // Largest capacity or content length accepted.
	Validate   bool // Check templates against Specifiers before rendering.
}

// Builtin configuration, independent of the environment.
func Builtin() Config {
	return Config{
		Policy:     Error,
		Specifiers: DefaultSpecifiers,
		MaxSize:    DefaultMaxSize,
		Validate:   true,
	}
}

const (
	envPolicy     = "BOUNDSTR_POLICY"
	envSpecifiers = "BOUNDSTR_SPECIFIERS"
	envMaxSize    = "BOUNDSTR_MAX_SIZE"
	envValidate   = "BOUNDSTR_VALIDATE"
)

// FromEnv parses the environment variables on top of the builtin
// configuration.
func FromEnv() (c Config, err error) {
	env.Load()

	c = Builtin()

	if s := env.Str(envPolicy); s != "" {
		if c.Policy, err = ParsePolicy(s); err != nil {
			err = xerrors.Errorf("%s: %w", envPolicy, err)
			return
		}
	}

	if s := env.Str(envSpecifiers); s != "" {
		c.Specifiers = Specifiers(s)
	}

	if s := env.Str(envMaxSize); s != "" {
		n, e := strconv.Atoi(s)
		if e != nil || n <= 0 || n > DefaultMaxSize {
			err = xerrors.Errorf("%s: size out of range: %q", envMaxSize, s)
			return
		}
		c.MaxSize = n
	}

	switch s := env.Str(envValidate); s {
	case "":
	case "0", "false", "no", "off":
		c.Validate = false
	default:
		c.Validate = true
	}

	return
}

var (
	defaultOnce   sync.Once
	defaultConfig *Config
)

// Default configuration of the process.  Invalid environment values are
// ignored; use FromEnv to check them.
func Default() *Config {
	defaultOnce.Do(func() {
		c, err := FromEnv()
		if err != nil {
			c = Builtin()
		}
		defaultConfig = &c
	})
	return defaultConfig
}
