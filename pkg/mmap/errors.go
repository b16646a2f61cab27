package mmap

import "fmt"

var (
	ErrClosed     = fmt.Errorf("mmap: mapping closed")
	ErrNotRegular = fmt.Errorf("mmap: not a regular file")
	ErrTooLarge   = fmt.Errorf("mmap: file too large to map")
)
