package base64

import (
	"errors"

	"github.com/ericlagergren/codec"
	"github.com/ericlagergren/codec/internal/alphabet"
)

const opDecode = "base64: decode"

// errExhausted is returned by skip when no input remains. It
// never escapes Decode.
var errExhausted = errors.New("base64: input exhausted")

type scanner struct {
	src []byte
	pos int
}

// skip consumes spaces and at most one line break ("\n" or
// "\r\n") followed by more spaces.
func (s *scanner) skip() error {
	for s.pos < len(s.src) && s.src[s.pos] == ' ' {
		s.pos++
	}
	if s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\r':
			if s.pos+1 >= len(s.src) || s.src[s.pos+1] != '\n' {
				return malformed(opDecode, s.pos, "carriage return without line feed")
			}
			s.pos += 2
		case '\n':
			s.pos++
		}
		for s.pos < len(s.src) && s.src[s.pos] == ' ' {
			s.pos++
		}
	}
	if s.pos >= len(s.src) {
		return errExhausted
	}
	return nil
}

// next returns the next symbol of a group and its offset.
func (s *scanner) next() (byte, int, error) {
	if err := s.skip(); err != nil {
		if err == errExhausted {
			return 0, len(s.src), malformed(opDecode, len(s.src), "truncated group")
		}
		return 0, s.pos, err
	}
	c := s.src[s.pos]
	s.pos++
	return c, s.pos - 1, nil
}

// Decode decodes src into dst and returns the number of bytes
// written.
//
// src is read in groups of four symbols. Spaces and a single
// "\n" or "\r\n" may appear before any symbol. Only the third
// and fourth symbols of a group may be '=', and a padded third
// symbol requires a padded fourth. Decoding stops after a padded
// group, at a NUL in place of a group's first symbol, or when
// three or fewer bytes of src remain.
//
// Decode returns an error with the codec.MalformedInput status
// if src is not valid Base64, and with the codec.InvalidArgument
// status if dst cannot hold the next group. DecodedLen(len(src))
// bytes is always enough. Capacity is checked one group at a
// time, so in both cases the groups decoded before the error
// remain in dst.
//
// If dst has room for one more byte, a NUL is written after the
// output. It is not counted.
func (e *Encoding) Decode(dst, src []byte) (n int, err error) {
	val := e.valLookup()
	s := scanner{src: src}

	for len(src)-s.pos > 3 {
		if err := s.skip(); err != nil {
			if err == errExhausted {
				// Running out of input between groups is
				// fine.
				break
			}
			return n, err
		}
		c1, off1 := src[s.pos], s.pos
		if c1 == 0 {
			break
		}
		s.pos++

		c2, off2, err := s.next()
		if err != nil {
			return n, err
		}
		c3, off3, err := s.next()
		if err != nil {
			return n, err
		}
		c4, off4, err := s.next()
		if err != nil {
			return n, err
		}

		pad3 := codec.ConstantTimeByteEq(c3, alphabet.Pad)
		pad4 := codec.ConstantTimeByteEq(c4, alphabet.Pad)
		if pad3 == 1 && pad4 == 0 {
			return n, malformed(opDecode, off3, "invalid padding")
		}

		v1 := val(c1)
		v2 := val(c2)
		v3 := codec.ConstantTimeByteSelect(pad3, 0, val(c3))
		v4 := codec.ConstantTimeByteSelect(pad4, 0, val(c4))
		if (v1|v2|v3|v4)&0xc0 != 0 {
			off := off4
			switch {
			case v1 == alphabet.Invalid:
				off = off1
			case v2 == alphabet.Invalid:
				off = off2
			case v3 == alphabet.Invalid:
				off = off3
			}
			return n, malformed(opDecode, off, "invalid symbol")
		}

		if n+3-pad3-pad4 > len(dst) {
			return n, invalidArgument(opDecode, "output buffer too small")
		}

		dst[n] = v1<<2 | v2>>4
		n++
		if pad3 == 0 {
			dst[n] = v2<<4 | v3>>2
			n++
		}
		if pad4 != 0 {
			// Padding only occurs at the end.
			break
		}
		dst[n] = v3<<6 | v4
		n++
	}

	if len(dst) > n {
		dst[n] = 0
	}
	return n, nil
}

// DecodeString returns the bytes represented by the Base64 text
// s.
//
// If s is malformed, DecodeString returns the bytes decoded
// before the error.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(s)))
	n, err := e.Decode(dst, []byte(s))
	return dst[:n], err
}
