// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

// Program boundfmt renders a template into a fixed-size buffer.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gate.computer/boundstr/buffer"
	"gate.computer/boundstr/config"
	"gate.computer/boundstr/errors/errordata"
	"gate.computer/boundstr/format"
	"gate.computer/boundstr/region"
	"golang.org/x/xerrors"
)

var (
	verbose    = false
	jsonErrors = false
)

func fatal(err error) {
	if jsonErrors {
		if e := json.NewEncoder(os.Stderr).Encode(errordata.Deconstruct(err)); e != nil {
			log.Print(e)
		}
		os.Exit(1)
	}
	log.Fatal(err)
}

// parseArg converts a command-line argument to the value passed to the
// template: integers as int64, decimal fractions as float64, the rest as
// strings.
func parseArg(s string) interface{} {
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i
	}
	if strings.ContainsAny(s, ".eE") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

func storage(size int, mmap, lock bool) (mem []byte, done func(), err error) {
	if !mmap {
		mem = make([]byte, size)
		done = func() {}
		return
	}

	r, err := region.Map(size)
	if err != nil {
		return
	}

	if lock {
		if err = r.Lock(); err != nil {
			r.Close()
			return
		}
	}

	mem, err = r.Storage(size)
	if err != nil {
		r.Close()
		return
	}

	done = func() {
		if err := r.Close(); err != nil {
			log.Print(err)
		}
	}
	return
}

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] template [args...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	var (
		size     = 64
		truncate = false
		allow    = ""
		mmap     = false
		lock     = false
	)

	flag.BoolVar(&verbose, "v", verbose, "verbose logging")
	flag.BoolVar(&jsonErrors, "json", jsonErrors, "report errors as JSON")
	flag.IntVar(&size, "size", size, "storage size in bytes, including terminator")
	flag.BoolVar(&truncate, "truncate", truncate, "truncate output instead of failing")
	flag.StringVar(&allow, "allow", allow, "allowed conversion characters (default from environment or \""+string(config.DefaultSpecifiers)+"\")")
	flag.BoolVar(&mmap, "mmap", mmap, "allocate storage from an anonymous memory mapping")
	flag.BoolVar(&lock, "lock", lock, "lock mapped storage into memory")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fatal(err)
	}
	if truncate {
		cfg.Policy = config.Truncate
	}
	if allow != "" {
		cfg.Specifiers = config.Specifiers(allow)
	}

	mem, done, err := storage(size, mmap, lock)
	if err != nil {
		fatal(err)
	}
	defer done()

	b, err := buffer.NewConfig(&cfg, mem)
	if err != nil {
		done()
		fatal(xerrors.Errorf("storage: %w", err))
	}

	var args []interface{}
	for _, s := range flag.Args()[1:] {
		args = append(args, parseArg(s))
	}

	if verbose {
		log.Printf("policy %s, capacity %d, %d arguments", cfg.Policy, b.Cap(), len(args))
	}

	n, err := format.Format(b, flag.Arg(0), args...)
	if err != nil {
		done()
		fatal(err)
	}

	if verbose && n == b.Cap() {
		log.Printf("output fills capacity (%d bytes); it may have been truncated", n)
	}

	fmt.Println(b.String())
}
