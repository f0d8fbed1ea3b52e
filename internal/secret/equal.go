package secret

import "crypto/subtle"

// Equal reports whether two protected buffers hold the same bytes.
//
// Length is compared first and is not treated as sensitive. When lengths
// match, the full contents are compared in constant time, so the result
// time does not depend on where the first differing byte sits. Any
// failure to obtain raw access to either buffer (e.g. one was already
// destroyed) counts as "not equal" - fail closed rather than propagate.
func Equal(a, b *Buffer) bool {
	if a == nil || b == nil {
		return false
	}
	if a == b {
		// Trivially equal, but still refuse destroyed buffers.
		return a.With(func([]byte) error { return nil }) == nil
	}
	if a.Len() != b.Len() {
		return false
	}

	equal := false
	err := a.With(func(da []byte) error {
		return b.With(func(db []byte) error {
			equal = subtle.ConstantTimeCompare(da, db) == 1
			return nil
		})
	})
	if err != nil {
		return false
	}
	return equal
}
