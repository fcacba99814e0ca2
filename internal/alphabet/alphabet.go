// Package alphabet holds the Base64 and Base16 symbol tables.
//
// Every lookup has a table-driven form and a constant-time form
// (the *CT functions). Both forms implement the same mapping.
package alphabet

// Invalid is returned by the reverse lookups for characters that
// are not in the alphabet.
const Invalid = 0xff

// Pad is the Base64 padding symbol.
const Pad = '='

// base64Alphabet is the standard RFC 4648 alphabet.
const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"+/"

// base64Min is the smallest character in the Base64 alphabet.
const base64Min = '+'

// base64Decode maps c-base64Min to the 6-bit value of c.
var base64Decode = [...]byte{
	62, Invalid, Invalid, Invalid, 63, // + , - . /
	52, 53, 54, 55, 56, 57, 58, 59, 60, 61, // 0-9
	Invalid, Invalid, Invalid, Invalid, Invalid, Invalid, Invalid, // : ; < = > ? @
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
	13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, // A-Z
	Invalid, Invalid, Invalid, Invalid, Invalid, Invalid, // [ \ ] ^ _ `
	26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38,
	39, 40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 51, // a-z
}

// Base64Sym returns the Base64 symbol for the 6-bit value v.
func Base64Sym(v byte) byte {
	return base64Alphabet[v&0x3f]
}

// Base64Val returns the 6-bit value of the Base64 symbol c, or
// Invalid.
//
// The pad symbol is not part of the alphabet.
func Base64Val(c byte) byte {
	i := int(c) - base64Min
	if i < 0 || i >= len(base64Decode) {
		return Invalid
	}
	return base64Decode[i]
}

const hexAlphabet = "0123456789ABCDEF"

// hexMin is the smallest hexadecimal digit.
const hexMin = '0'

// hexDecode maps c-hexMin to the nibble value of c.
var hexDecode = [...]byte{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, // 0-9
	Invalid, Invalid, Invalid, Invalid, Invalid, Invalid, Invalid, // : ; < = > ? @
	10, 11, 12, 13, 14, 15, // A-F
	Invalid, Invalid, Invalid, Invalid, Invalid, Invalid, Invalid, Invalid, Invalid,
	Invalid, Invalid, Invalid, Invalid, Invalid, Invalid, Invalid, Invalid, Invalid,
	Invalid, Invalid, Invalid, Invalid, Invalid, Invalid, Invalid, Invalid, // G-`
	10, 11, 12, 13, 14, 15, // a-f
}

// HexSym returns the uppercase hexadecimal digit for the low
// nibble of v.
func HexSym(v byte) byte {
	return hexAlphabet[v&0x0f]
}

// HexVal returns the nibble value of the hexadecimal digit c, or
// Invalid. Both cases are accepted.
func HexVal(c byte) byte {
	i := int(c) - hexMin
	if i < 0 || i >= len(hexDecode) {
		return Invalid
	}
	return hexDecode[i]
}
