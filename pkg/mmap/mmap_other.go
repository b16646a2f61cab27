//go:build !unix

package mmap

import (
	"io"
	"os"
)

// mapFile reads the whole file on platforms without unix mmap.
func mapFile(fd *os.File, size int) ([]byte, bool, error) {
	mem := make([]byte, size)
	if _, err := io.ReadFull(fd, mem); err != nil {
		return nil, false, err
	}
	return mem, false, nil
}

func unmapFile([]byte) error {
	return nil
}
