// Package hex implements Base16 encoding and decoding.
//
// Encoders produce uppercase digits. Decoders accept either case.
//
// The ConstantTime variants replace the alphabet table lookups
// with branch-free arithmetic. They have the same contract and
// produce the same results.
package hex

import (
	"strconv"

	"github.com/ericlagergren/codec"
	"github.com/ericlagergren/codec/internal/alphabet"
)

const (
	opEncode = "hex: encode"
	opDecode = "hex: decode"
)

// EncodedLen returns the length of an encoding of n source
// bytes.
// Specifically, it returns n * 2.
func EncodedLen(n int) int {
	return n * 2
}

// DecodedLen returns the length of a decoding of n source
// bytes.
//
// A single hexadecimal digit decodes to one byte, so
// DecodedLen(1) == 1.
func DecodedLen(n int) int {
	if n == 1 {
		return 1
	}
	return n / 2
}

// Encode encodes src into EncodedLen(len(src)) bytes of dst and
// returns the number of bytes written.
//
// It returns an error with the codec.InvalidArgument status if
// dst is too small. If dst has room for one more byte, a NUL
// is written after the output. It is not counted.
func Encode(dst, src []byte) (int, error) {
	return encode(dst, src, alphabet.HexSym)
}

// ConstantTimeEncode is like Encode, but runs in constant time
// for the length of src.
func ConstantTimeEncode(dst, src []byte) (int, error) {
	return encode(dst, src, alphabet.HexSymCT)
}

func encode(dst, src []byte, sym func(byte) byte) (int, error) {
	n := EncodedLen(len(src))
	if len(dst) < n {
		return 0, &codec.Error{
			Op:     opEncode,
			Status: codec.InvalidArgument,
			Offset: -1,
			Msg:    "output buffer too small",
		}
	}
	j := 0
	for _, v := range src {
		dst[j] = sym(v >> 4)
		dst[j+1] = sym(v & 0x0f)
		j += 2
	}
	if len(dst) > n {
		dst[n] = 0
	}
	return n, nil
}

// EncodeToString returns the hexadecimal encoding of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}

// Decode decodes src into DecodedLen(len(src)) bytes of dst and
// returns the number of bytes written.
//
// Each pair of digits in src produces one byte. As a special
// case, a src holding a single digit produces one byte with
// that digit as its low nibble.
//
// Decode returns an error with the codec.InvalidArgument status
// if src has odd length (other than 1) or dst is too small, and
// an error with the codec.MalformedInput status if src contains
// a character that is not a hexadecimal digit. Bytes decoded
// before a malformed character remain in dst.
//
// If dst has room for one more byte, a NUL is written after the
// output. It is not counted.
func Decode(dst, src []byte) (int, error) {
	return decode(dst, src, alphabet.HexVal)
}

// ConstantTimeDecode is like Decode, but each character is
// converted in constant time.
func ConstantTimeDecode(dst, src []byte) (int, error) {
	return decode(dst, src, alphabet.HexValCT)
}

func decode(dst, src []byte, val func(byte) byte) (int, error) {
	if len(src) == 1 {
		if len(dst) == 0 {
			return 0, shortBuffer()
		}
		b := val(src[0])
		if b == alphabet.Invalid {
			return 0, invalidByte(src, 0)
		}
		dst[0] = b
		if len(dst) > 1 {
			dst[1] = 0
		}
		return 1, nil
	}
	if len(src)%2 != 0 {
		return 0, &codec.Error{
			Op:     opDecode,
			Status: codec.InvalidArgument,
			Offset: -1,
			Msg:    "odd length input",
		}
	}
	if len(dst) < len(src)/2 {
		return 0, shortBuffer()
	}

	i := 0
	for j := 0; j < len(src); j += 2 {
		hi := val(src[j])
		lo := val(src[j+1])
		if hi == alphabet.Invalid {
			return i, invalidByte(src, j)
		}
		if lo == alphabet.Invalid {
			return i, invalidByte(src, j+1)
		}
		dst[i] = hi<<4 | lo
		i++
	}
	if len(dst) > i {
		dst[i] = 0
	}
	return i, nil
}

func shortBuffer() error {
	return &codec.Error{
		Op:     opDecode,
		Status: codec.InvalidArgument,
		Offset: -1,
		Msg:    "output buffer too small",
	}
}

func invalidByte(src []byte, off int) error {
	return &codec.Error{
		Op:     opDecode,
		Status: codec.MalformedInput,
		Offset: off,
		Msg:    "invalid byte " + strconv.QuoteRune(rune(src[off])),
	}
}

// DecodeString returns the bytes represented by the hexadecimal
// string s.
//
// If the input is malformed, DecodeString returns the bytes
// decoded before the error.
func DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	dst := make([]byte, DecodedLen(len(src)))
	n, err := Decode(dst, src)
	return dst[:n], err
}
