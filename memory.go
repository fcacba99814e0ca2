package codec

import "runtime"

// Wipe sets every byte in x to zero.
//
// The codec never rolls back output written before a failure.
// Callers holding secret material should Wipe the destination
// buffer whenever a call returns an error other than
// ErrSizeOnly.
//
//go:noinline
func Wipe(x []byte) {
	// Marked "noinline" so that the compiler (hopefully) won't
	// peer inside and notice that x can be DCEd.
	for i := range x {
		x[i] = 0
	}
	runtime.KeepAlive(x)
}
