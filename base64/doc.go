// Package base64 implements Base64 encoding and decoding as
// specified by RFC 4648, for PEM-style text.
//
// Comparison to encoding/base64
//
// This package only uses the standard alphabet with '=' padding.
//
// Unlike encoding/base64, encoders wrap their output into lines
// (see Mode). StdEncoding writes a '\n' after every 64 symbols
// and after the final line, EscapedEncoding writes "%0A" instead
// and percent-escapes '+' and '=', and NoNewlineEncoding writes
// no line breaks at all.
//
// Encoders answer size-only queries: passing a nil dst returns
// the exact number of bytes the call would write together with
// codec.ErrSizeOnly. This allows two-pass, measure-then-fill
// allocation:
//
//    n, _ := base64.EncodeStandard(nil, src)
//    dst := make([]byte, n)
//    base64.EncodeStandard(dst, src)
//
// Decoders skip spaces and accept one "\n" or "\r\n" between
// symbols. Decoding stops after the first padded group, at a NUL
// in place of a group's first symbol, or when fewer than four
// bytes of input remain.
//
// Unlike encoding/base64, this package does not roll back
// output. If Decode fails, dst holds the bytes of every group
// decoded before the error. Callers must discard it.
//
// Encodings derived with ConstantTime convert each symbol with
// branch-free arithmetic instead of table lookups. The framing
// (whitespace, line breaks, padding) is still parsed with
// branches.
package base64
