// https://github.com/jedisct1/libsodium/blob/d4ee08ab8a1c674203796161af6d013283b33d69/src/libsodium/sodium/codecs.c
// https://github.com/jedisct1/libsodium/blob/561e556dad078af581f338fe3de9ee6362d28b16/LICENSE
//
//  Copyright (c) 2013-2022 Frank Denis <j at pureftpd dot org>
//  Portions Copyright (c) 2022 Eric Lagergren
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted, provided that the above
// copyright notice and this permission notice appear in all copies.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
// WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
// MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
// ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
// WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
// ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
// OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.

package alphabet

import "github.com/ericlagergren/codec"

// Base64SymCT is the constant-time form of Base64Sym.
//
// See http://0x80.pl/notesen/2016-01-12-sse-base64-encoding.html
func Base64SymCT(v byte) byte {
	c := uint(v & 0x3f)

	// Start with an initial guess that c is in [0, 25], making
	// the shift 'A' (65).
	s := uint('A')

	// If c is greater than 25, c is in [26, 51] and the shift
	// becomes 'a'-26 = 71.
	s += (26 - c - 1) >> 8 & 6

	// If c is greater than 51, c is in [52, 61] and the shift
	// becomes '0'-52 = -4 mod 2^64.
	s -= (52 - c - 1) >> 8 & 75

	// c == 62 maps to '+' (43 = 62-19).
	s -= (62 - c - 1) >> 8 & 15

	// c == 63 maps to '/' (47 = 63-16).
	s += (63 - c - 1) >> 8 & 3

	return byte(c + s)
}

// Base64ValCT is the constant-time form of Base64Val.
func Base64ValCT(ch byte) byte {
	c := uint(ch)

	// switch {
	// case c >= 'A' && c <= 'Z':
	//     s = -65
	// case c >= 'a' && c <= 'z'
	//     s = -71
	// case c >= '0' && c <= '9'
	//     s = 4
	// case c == '+':
	//     s = 19
	// case c == '/':
	//     s = 16
	// }
	s := ((((64 - c) & (c - 91)) >> 8) & 191) ^
		((((96 - c) & (c - 123)) >> 8) & 185) ^
		((((47 - c) & (c - 58)) >> 8) & 4) ^
		((((42 - c) & (c - 44)) >> 8) & 19) ^
		((((46 - c) & (c - 48)) >> 8) & 16)
	// If s == 0 then the input is invalid.
	//
	// Since s is one of {0, 191, 185, 4, 19, 16}, shift off
	// bits [8:0] (which are allowed to be non-zero) and check
	// [16:8].
	return byte((s+c)&0x3f | ((((0 - s) >> 8) & 0xff) ^ 0xff))
}

// HexSymCT is the constant-time form of HexSym.
func HexSymCT(v byte) byte {
	c := uint(v & 0x0f)

	// If c < 10, (c-10)>>8 has every low bit set and the mask
	// moves the shift from 'A'-10 down to '0'.
	const mask = ^uint(6)
	return byte(55 + c + (((c - 10) >> 8) & mask))
}

// HexValCT is the constant-time form of HexVal.
func HexValCT(ch byte) byte {
	c := uint(ch)

	// Is c in '0' ... '9'?
	//
	// This is equivalent to
	//
	//    if n := c^'0'; n < 10 {
	//        val = n
	//    }
	//
	// If num < 10, subtracting 10 produces the two's complement
	// and shifting by 8 leaves bits [7:0] all set, resulting
	// in 0xff. Otherwise the result is 0x00.
	num := c ^ '0'
	num0 := (num - 10) >> 8

	// Is c in 'a' ... 'f' or 'A' ... 'F'?
	//
	// Masking bit #5 folds lowercase into uppercase, and
	// subtracting 55 makes 'A' = 10, 'B' = 11, etc.
	//
	// (alpha-10)^(alpha-16) sets bits [63:4] only when alpha
	// is in [10, 15], so shifting by 8 yields 0xff for a letter
	// digit and 0x00 otherwise.
	alpha := (c & ^uint(32)) - 55
	alpha0 := ((alpha - 10) ^ (alpha - 16)) >> 8

	// If both num0 and alpha0 are 0x00 then the character is
	// invalid.
	bad := codec.ConstantTimeByteEq(byte(num0|alpha0), 0)

	// Only num or alpha can be non-zero here.
	val := byte(num0&num | alpha0&alpha)
	return codec.ConstantTimeByteSelect(bad, Invalid, val)
}
