// Package mmap maps whole files read only into memory so they can be
// searched as one contiguous buffer.
package mmap

import (
	"fmt"
	"os"
)

// MaxInt is the maximum platform dependent signed integer.
const MaxInt = int(^uint(0) >> 1)

// Mapping is a read only view of a file's contents.
type Mapping struct {
	// memory specifies the byte slice which wraps the mapped memory.
	memory []byte
	// mapped is false when memory came from an ordinary read.
	mapped bool
	closed bool
}

// Open maps the named file into memory. Empty files yield an empty mapping
// with a nil buffer.
func Open(name string) (*Mapping, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	fi, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	size := fi.Size()
	if size > int64(MaxInt) {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, name, size)
	}
	m := new(Mapping)
	if size == 0 {
		return m, nil
	}
	m.memory, m.mapped, err = mapFile(fd, int(size))
	if err != nil {
		return nil, fmt.Errorf("mmap: %s: %w", name, err)
	}
	return m, nil
}

// Len returns the mapped length in bytes.
func (m *Mapping) Len() int {
	return len(m.memory)
}

// Bytes returns the mapped memory. It must not be modified, and must not be
// used after Close.
func (m *Mapping) Bytes() []byte {
	return m.memory
}

// Close releases the mapping. Closing twice returns ErrClosed.
func (m *Mapping) Close() error {
	if m.closed {
		return ErrClosed
	}
	m.closed = true
	mem := m.memory
	m.memory = nil
	if m.mapped && mem != nil {
		return unmapFile(mem)
	}
	return nil
}
