package secret

import (
	"crypto/subtle"
	"runtime"
)

// ZeroBytes securely zeroes a byte slice.
// Uses constant-time operations so the wipe cannot be elided.
func ZeroBytes(b []byte) {
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	runtime.KeepAlive(b)
}
