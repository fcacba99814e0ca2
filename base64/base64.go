package base64

import (
	"strconv"

	"github.com/ericlagergren/codec"
	"github.com/ericlagergren/codec/internal/alphabet"
)

// DefaultLineLength is the number of symbols per line in the
// wrapped modes, as used in PEM.
const DefaultLineLength = 64

// Mode selects how an Encoding breaks its output into lines.
type Mode int

const (
	// Standard writes '\n' after every line and after the
	// last one.
	Standard Mode = iota
	// EscapedNewline is like Standard, but writes "%0A" for
	// each line break and "%2B" and "%3D" for the symbols '+'
	// and '='.
	EscapedNewline
	// NoNewline writes no line breaks.
	NoNewline
)

func (m Mode) String() string {
	switch m {
	case Standard:
		return "Standard"
	case EscapedNewline:
		return "EscapedNewline"
	case NoNewline:
		return "NoNewline"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// StdEncoding is the PEM-style encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
var StdEncoding = &Encoding{
	mode:    Standard,
	lineLen: DefaultLineLength,
}

// EscapedEncoding is StdEncoding with percent-escaped line
// breaks, '+', and '='.
var EscapedEncoding = &Encoding{
	mode:    EscapedNewline,
	lineLen: DefaultLineLength,
}

// NoNewlineEncoding is StdEncoding without line breaks.
var NoNewlineEncoding = &Encoding{
	mode:    NoNewline,
	lineLen: DefaultLineLength,
}

// Encoding is a particular Base64 text format.
//
// The zero value is StdEncoding.
//
// See the package docs for a comparison with encoding/base64.
type Encoding struct {
	mode    Mode
	lineLen int
	ct      bool
}

// WithLineLength returns an identical Encoding that writes n
// symbols per line.
//
// n must be a positive multiple of 4.
func (e Encoding) WithLineLength(n int) *Encoding {
	if n <= 0 || n%4 != 0 {
		panic("base64: invalid line length")
	}
	e.lineLen = n
	return &e
}

// ConstantTime returns an identical Encoding that converts
// symbols in constant time.
func (e Encoding) ConstantTime() *Encoding {
	e.ct = true
	return &e
}

// Mode returns the line break mode of e.
func (e *Encoding) Mode() Mode {
	return e.mode
}

// LineLength returns the number of symbols per line.
func (e *Encoding) LineLength() int {
	if e.lineLen == 0 {
		return DefaultLineLength
	}
	return e.lineLen
}

// lines returns the number of line breaks written for n
// symbols.
func (e *Encoding) lines(n int) int {
	if e.mode == NoNewline {
		return 0
	}
	return (n + e.LineLength() - 1) / e.LineLength()
}

// EncodedLen returns the size in bytes of the encoding of n
// source bytes.
//
// For EscapedNewline it returns an upper bound, since the size
// depends on how many '+' and '=' symbols the input produces.
// Call Encode with a nil dst for the exact size.
func (e *Encoding) EncodedLen(n int) int {
	syms := (n + 2) / 3 * 4
	if e.mode == EscapedNewline {
		return 3*syms + 3*e.lines(syms)
	}
	return syms + e.lines(syms)
}

// minEncodedLen returns the smallest possible size of the
// encoding of n source bytes.
func (e *Encoding) minEncodedLen(n int) int {
	syms := (n + 2) / 3 * 4
	if e.mode == EscapedNewline {
		return syms + 3*e.lines(syms)
	}
	return syms + e.lines(syms)
}

// DecodedLen returns the maximum length in bytes of the
// decoding of n bytes of Base64 text.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// EncodeStandard encodes src with StdEncoding.
func EncodeStandard(dst, src []byte) (int, error) {
	return StdEncoding.Encode(dst, src)
}

// EncodeEscaped encodes src with EscapedEncoding.
func EncodeEscaped(dst, src []byte) (int, error) {
	return EscapedEncoding.Encode(dst, src)
}

// EncodeNoNewline encodes src with NoNewlineEncoding.
func EncodeNoNewline(dst, src []byte) (int, error) {
	return NoNewlineEncoding.Encode(dst, src)
}

// Decode decodes src into dst. It accepts the output of every
// Mode except EscapedNewline.
//
// See (*Encoding).Decode.
func Decode(dst, src []byte) (int, error) {
	return StdEncoding.Decode(dst, src)
}

func (e *Encoding) symLookup() func(byte) byte {
	if e.ct {
		return alphabet.Base64SymCT
	}
	return alphabet.Base64Sym
}

func (e *Encoding) valLookup() func(byte) byte {
	if e.ct {
		return alphabet.Base64ValCT
	}
	return alphabet.Base64Val
}

func invalidArgument(op, msg string) error {
	return &codec.Error{
		Op:     op,
		Status: codec.InvalidArgument,
		Offset: -1,
		Msg:    msg,
	}
}

func malformed(op string, off int, msg string) error {
	return &codec.Error{
		Op:     op,
		Status: codec.MalformedInput,
		Offset: off,
		Msg:    msg,
	}
}
