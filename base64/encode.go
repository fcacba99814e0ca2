package base64

import "github.com/ericlagergren/codec"

const opEncode = "base64: encode"

// emitter writes encoded text into dst, or only counts it when
// sizeOnly is set.
type emitter struct {
	dst      []byte
	n        int
	sizeOnly bool
	escape   bool
}

// put writes c, percent-escaping it if required.
func (w *emitter) put(c byte) error {
	var esc string
	if w.escape {
		switch c {
		case '+':
			esc = "%2B"
		case '=':
			esc = "%3D"
		case '\n':
			esc = "%0A"
		}
	}
	need := 1
	if esc != "" {
		need = len(esc)
	}
	if w.sizeOnly {
		w.n += need
		return nil
	}
	if w.n+need > len(w.dst) {
		return invalidArgument(opEncode, "output buffer too small")
	}
	if esc != "" {
		copy(w.dst[w.n:], esc)
	} else {
		w.dst[w.n] = c
	}
	w.n += need
	return nil
}

func (w *emitter) group(syms [4]byte) error {
	for _, c := range syms {
		if err := w.put(c); err != nil {
			return err
		}
	}
	return nil
}

// Encode encodes src into dst and returns the number of bytes
// written.
//
// If dst is nil, Encode writes nothing and returns the number of
// bytes it would write along with codec.ErrSizeOnly.
//
// Encode returns an error with the codec.InvalidArgument status
// if dst is too small. Unless the mode is EscapedNewline, this
// is detected before anything is written.
//
// If dst has room for one more byte, a NUL is written after the
// output. It is not counted.
func (e *Encoding) Encode(dst, src []byte) (int, error) {
	w := emitter{
		dst:      dst,
		sizeOnly: dst == nil,
		escape:   e.mode == EscapedNewline,
	}
	if !w.sizeOnly && len(dst) < e.minEncodedLen(len(src)) {
		return 0, invalidArgument(opEncode, "output buffer too small")
	}

	sym := e.symLookup()
	wrap := e.mode != NoNewline && len(src) > 0
	perLine := e.LineLength() / 4

	// Convert 3 -> 4.
	for groups := 1; len(src) >= 3; groups++ {
		v := uint(src[0])<<16 | uint(src[1])<<8 | uint(src[2])
		err := w.group([4]byte{
			sym(byte(v >> 18)),
			sym(byte(v >> 12)),
			sym(byte(v >> 6)),
			sym(byte(v)),
		})
		if err != nil {
			return w.n, err
		}
		src = src[3:]

		if wrap && groups%perLine == 0 && len(src) > 0 {
			if err := w.put('\n'); err != nil {
				return w.n, err
			}
		}
	}

	var err error
	switch len(src) {
	case 2:
		v := uint(src[0])<<16 | uint(src[1])<<8
		err = w.group([4]byte{
			sym(byte(v >> 18)),
			sym(byte(v >> 12)),
			sym(byte(v >> 6)),
			'=',
		})
	case 1:
		v := uint(src[0]) << 16
		err = w.group([4]byte{
			sym(byte(v >> 18)),
			sym(byte(v >> 12)),
			'=',
			'=',
		})
	}
	if err == nil && wrap {
		err = w.put('\n')
	}
	if err != nil {
		return w.n, err
	}

	if w.sizeOnly {
		return w.n, codec.ErrSizeOnly
	}
	if len(dst) > w.n {
		dst[w.n] = 0
	}
	return w.n, nil
}

// EncodeToString returns the encoding of src.
func (e *Encoding) EncodeToString(src []byte) string {
	n, _ := e.Encode(nil, src)
	dst := make([]byte, n)
	e.Encode(dst, src)
	return string(dst)
}
