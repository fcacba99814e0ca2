package codec

import "crypto/subtle"

// ConstantTimeByteEq returns 1 if x == y and 0 otherwise.
func ConstantTimeByteEq(x, y uint8) int {
	return subtle.ConstantTimeByteEq(x, y)
}

// ConstantTimeSelect returns x if v == 1 and y if v == 0.
// Its behavior is undefined if v takes any other value.
func ConstantTimeSelect(v, x, y int) int {
	return subtle.ConstantTimeSelect(v, x, y)
}

// ConstantTimeByteSelect is like ConstantTimeSelect, but for
// bytes.
func ConstantTimeByteSelect(v int, x, y byte) byte {
	return byte(ConstantTimeSelect(v, int(x), int(y)))
}
