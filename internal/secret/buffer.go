// Package secret holds sensitive byte sequences in protected memory.
//
// A Buffer is backed by page-locked memory (best effort) so secrets are
// not swapped to disk, and is zeroed on Destroy. Raw bytes are only
// reachable through the scoped With accessor, which keeps the window in
// which plaintext is visible as small as possible.
package secret

import (
	"errors"
	"runtime"
	"sync"
)

// ErrDestroyed is returned by With after the buffer has been destroyed.
var ErrDestroyed = errors.New("secret buffer destroyed")

// Buffer holds sensitive data with memory protection
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	locked bool
}

// New creates a buffer that won't be swapped to disk
func New(size int) *Buffer {
	buf := &Buffer{
		data: make([]byte, size),
	}

	// Prevent swapping to disk (best effort)
	if err := buf.mlock(); err != nil {
		// Continue - mlock may fail without CAP_IPC_LOCK.
		// The data is still protected by process memory isolation.
	}

	// Set finalizer to ensure cleanup
	runtime.SetFinalizer(buf, (*Buffer).Destroy)

	return buf
}

// FromBytes creates a protected buffer from existing bytes.
// The source slice is zeroed so no plaintext alias survives construction.
func FromBytes(data []byte) *Buffer {
	buf := New(len(data))
	copy(buf.data, data)

	// Zero the source
	ZeroBytes(data)

	return buf
}

// Len returns the secret length in bytes
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// With grants scoped read access to the raw secret bytes for the duration
// of fn. The slice must not be retained or copied out of the closure; it
// points at the protected backing memory, which is the only raw view.
// Returns ErrDestroyed if the buffer has already been destroyed.
func (b *Buffer) With(fn func(data []byte) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data == nil {
		return ErrDestroyed
	}

	return fn(b.data)
}

// Destroy securely zeros the memory and unlocks. Safe to call more than
// once; a destroyed buffer reports length 0 and refuses raw access.
func (b *Buffer) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data == nil {
		return
	}

	// Secure zero
	ZeroBytes(b.data)

	// Unlock memory
	if b.locked {
		b.munlock()
	}

	b.data = nil

	// Remove finalizer since we've cleaned up
	runtime.SetFinalizer(b, nil)
}
