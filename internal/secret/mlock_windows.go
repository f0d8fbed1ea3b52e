//go:build windows

package secret

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// mlock prevents memory from being swapped
func (b *Buffer) mlock() error {
	if len(b.data) == 0 {
		return nil
	}

	err := windows.VirtualLock(uintptr(unsafe.Pointer(&b.data[0])), uintptr(len(b.data)))
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

	err := windows.VirtualUnlock(uintptr(unsafe.Pointer(&b.data[0])), uintptr(len(b.data)))
	if err == nil {
		b.locked = false
	}
	return err
}
