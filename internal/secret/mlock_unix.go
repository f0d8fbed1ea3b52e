//go:build !windows

package secret

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// mlock prevents memory from being swapped
func (b *Buffer) mlock() error {
	if len(b.data) == 0 {
		return nil
	}

	ptr := unsafe.Pointer(&b.data[0])
	err := unix.Mlock((*[1 << 30]byte)(ptr)[:len(b.data)])
	if err == nil {
		b.locked = true
	}
	return err
}

// munlock allows memory to be swapped again
func (b *Buffer) munlock() error {
	if len(b.data) == 0 {
		return nil
	}

	ptr := unsafe.Pointer(&b.data[0])
	err := unix.Munlock((*[1 << 30]byte)(ptr)[:len(b.data)])
	if err == nil {
		b.locked = false
	}
	return err
}
