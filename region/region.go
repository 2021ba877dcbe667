// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

// Package region provides buffer storage carved out of an anonymous memory
// mapping, for programs which want to avoid heap allocation after startup.
package region

import (
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"gate.computer/boundstr/errors"
)

var errExhausted = errors.Wrap(errors.ErrCapacity, "memory region exhausted")

// Region is a fixed-size memory mapping.  Storage slices handed out by it are
// valid until Close.
type Region struct {
	mem    []byte
	offset int
	locked bool
}

// Map a private, read-write region of the given size.
func Map(size int) (r *Region, err error) {
	if size <= 0 {
		err = errors.Wrap(errors.ErrCapacity, "region size must be positive")
		return
	}

	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		err = pkgerrors.Wrapf(err, "mapping %d bytes", size)
		return
	}

	r = &Region{mem: mem}
	return
}

// Lock the region into memory, so that buffer operations don't page.
func (r *Region) Lock() error {
	if r.mem == nil {
		return errors.ErrNullArgument
	}

	if !r.locked {
		if err := unix.Mlock(r.mem); err != nil {
			return pkgerrors.Wrap(err, "locking region")
		}
		r.locked = true
	}
	return nil
}

// Size of the mapping.
func (r *Region) Size() int {
	return len(r.mem)
}

// Available bytes.
func (r *Region) Available() int {
	return len(r.mem) - r.offset
}

// Storage returns the next size bytes of the region.  Storage is never reused.
func (r *Region) Storage(size int) ([]byte, error) {
	if r.mem == nil {
		return nil, errors.ErrNullArgument
	}
	if size < 0 || size > r.Available() {
		return nil, errExhausted
	}

	b := r.mem[r.offset : r.offset+size : r.offset+size]
	r.offset += size
	return b, nil
}

// Close unmaps the region.  Storage slices must not be used afterwards.
func (r *Region) Close() (err error) {
	if r.mem == nil {
		return
	}

	if r.locked {
		if e := unix.Munlock(r.mem); e != nil {
			err = pkgerrors.Wrap(e, "unlocking region")
		}
		r.locked = false
	}

	if e := unix.Munmap(r.mem); e != nil && err == nil {
		err = pkgerrors.Wrap(e, "unmapping region")
	}

	r.mem = nil
	r.offset = 0
	return
}
