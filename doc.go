// Package codec holds the pieces shared by the Base64 and Base16
// codecs in its subpackages: the status taxonomy every call
// reports, and the constant-time primitives used by the hardened
// lookups.
//
// Every codec call writes into a caller-supplied buffer and never
// past len(dst). A call either succeeds (nil error), answers a
// size-only query (ErrSizeOnly), or fails with an *Error whose
// Status is InvalidArgument or MalformedInput.
//
// Output written before a failure is not rolled back. Callers
// must discard the destination buffer after any failure; see
// Wipe.
package codec
