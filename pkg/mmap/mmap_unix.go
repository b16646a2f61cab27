//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

func mapFile(fd *os.File, size int) ([]byte, bool, error) {
	mem, err := unix.Mmap(int(fd.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, false, err
	}
	return mem, true, nil
}

func unmapFile(mem []byte) error {
	return unix.Munmap(mem)
}
