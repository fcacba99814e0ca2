package hex

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"github.com/ericlagergren/codec"
)

type codecFuncs struct {
	name   string
	encode func(dst, src []byte) (int, error)
	decode func(dst, src []byte) (int, error)
}

var funcs = []codecFuncs{
	{"Table", Encode, Decode},
	{"ConstantTime", ConstantTimeEncode, ConstantTimeDecode},
}

func TestVectors(t *testing.T) {
	for _, f := range funcs {
		t.Run(f.name, func(t *testing.T) {
			raw := []byte{0xDE, 0xAD, 0xBE, 0xEF}

			dst := make([]byte, EncodedLen(len(raw)))
			n, err := f.encode(dst, raw)
			if err != nil {
				t.Fatal(err)
			}
			if got := string(dst[:n]); got != "DEADBEEF" {
				t.Fatalf("expected %q, got %q", "DEADBEEF", got)
			}

			for _, s := range []string{"deadbeef", "DEADBEEF", "DeAdBeEf"} {
				out := make([]byte, DecodedLen(len(s)))
				n, err := f.decode(out, []byte(s))
				if err != nil {
					t.Fatalf("%q: %v", s, err)
				}
				if !bytes.Equal(out[:n], raw) {
					t.Fatalf("%q: mismatch: %s", s, cmp.Diff(raw, out[:n]))
				}
			}
		})
	}
}

// TestStdlib tests Encode and Decode against encoding/hex.
func TestStdlib(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	rng := rand.New(rand.NewSource(seed))

	for _, f := range funcs {
		t.Run(f.name, func(t *testing.T) {
			src := make([]byte, 1024)
			rng.Read(src)
			for i := range src {
				want := strings.ToUpper(hex.EncodeToString(src[:i]))

				dst := make([]byte, EncodedLen(i))
				n, err := f.encode(dst, src[:i])
				if err != nil {
					t.Fatalf("#%d: %v", i, err)
				}
				if got := string(dst[:n]); got != want {
					t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(want, got))
				}

				out := make([]byte, DecodedLen(n))
				m, err := f.decode(out, dst[:n])
				if err != nil {
					t.Fatalf("#%d: %v", i, err)
				}
				if !bytes.Equal(out[:m], src[:i]) {
					t.Fatalf("#%d: round trip mismatch: %s", i, cmp.Diff(src[:i], out[:m]))
				}
			}
		})
	}
}

func TestDecodeSingleDigit(t *testing.T) {
	for _, f := range funcs {
		t.Run(f.name, func(t *testing.T) {
			for c, want := range map[byte]byte{
				'0': 0x00, '7': 0x07, 'a': 0x0a, 'F': 0x0f,
			} {
				dst := []byte{0xff}
				n, err := f.decode(dst, []byte{c})
				if err != nil {
					t.Fatalf("%q: %v", c, err)
				}
				if n != 1 || dst[0] != want {
					t.Fatalf("%q: expected %#x, got %#x (n=%d)", c, want, dst[0], n)
				}
			}

			_, err := f.decode(make([]byte, 1), []byte("g"))
			if !errors.Is(err, codec.ErrMalformedInput) {
				t.Fatalf("expected ErrMalformedInput, got %v", err)
			}

			// A single digit still needs somewhere to go.
			_, err = f.decode(nil, []byte("a"))
			if !errors.Is(err, codec.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			const want = "hex: decode: output buffer too small"
			if err.Error() != want {
				t.Fatalf("expected %q, got %q", want, err)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, f := range funcs {
		t.Run(f.name, func(t *testing.T) {
			for i, tc := range []struct {
				src    string
				dstLen int
				status codec.Status
				offset int
				n      int
			}{
				{"abc", 4, codec.InvalidArgument, -1, 0},
				{"abcd", 1, codec.InvalidArgument, -1, 0},
				{"zz", 1, codec.MalformedInput, 0, 0},
				{"0z", 1, codec.MalformedInput, 1, 0},
				{"00112g", 3, codec.MalformedInput, 5, 2},
				{"00 1", 2, codec.MalformedInput, 2, 1},
				{"0\x00", 1, codec.MalformedInput, 1, 0},
			} {
				dst := make([]byte, tc.dstLen)
				n, err := f.decode(dst, []byte(tc.src))
				if got := codec.StatusOf(err); got != tc.status {
					t.Fatalf("#%d: expected %v, got %v (%v)", i, tc.status, got, err)
				}
				var e *codec.Error
				if !errors.As(err, &e) {
					t.Fatalf("#%d: expected *codec.Error, got %T", i, err)
				}
				if e.Offset != tc.offset {
					t.Fatalf("#%d: expected offset %d, got %d", i, tc.offset, e.Offset)
				}
				if n != tc.n {
					t.Fatalf("#%d: expected %d bytes written, got %d", i, tc.n, n)
				}
			}
		})
	}
}

func TestDecodeCharacters(t *testing.T) {
	for _, f := range funcs {
		t.Run(f.name, func(t *testing.T) {
			for i := 0; i < 256; i++ {
				c := byte(i)
				ok := strings.IndexByte("0123456789abcdefABCDEF", c) >= 0
				_, err := f.decode(make([]byte, 1), []byte{'0', c})
				if ok && err != nil {
					t.Fatalf("%#x: %v", c, err)
				}
				if !ok && !errors.Is(err, codec.ErrMalformedInput) {
					t.Fatalf("%#x: expected ErrMalformedInput, got %v", c, err)
				}
			}
		})
	}
}

func TestEncodeShortBuffer(t *testing.T) {
	for _, f := range funcs {
		t.Run(f.name, func(t *testing.T) {
			src := []byte{1, 2, 3}
			for i := 0; i < EncodedLen(len(src)); i++ {
				dst := make([]byte, i)
				n, err := f.encode(dst, src)
				if !errors.Is(err, codec.ErrInvalidArgument) {
					t.Fatalf("#%d: expected ErrInvalidArgument, got %v", i, err)
				}
				if n != 0 {
					t.Fatalf("#%d: wrote %d bytes", i, n)
				}
			}
		})
	}
}

func TestTrailingNUL(t *testing.T) {
	for _, f := range funcs {
		t.Run(f.name, func(t *testing.T) {
			dst := bytes.Repeat([]byte{'x'}, 10)
			n, err := f.encode(dst, []byte{0xab, 0xcd})
			if err != nil {
				t.Fatal(err)
			}
			if n != 4 {
				t.Fatalf("expected 4, got %d", n)
			}
			if want := "ABCD\x00xxxxx"; string(dst) != want {
				t.Fatalf("expected %q, got %q", want, dst)
			}

			// No room, no NUL.
			dst = make([]byte, 4)
			if _, err := f.encode(dst, []byte{0xab, 0xcd}); err != nil {
				t.Fatal(err)
			}
			if string(dst) != "ABCD" {
				t.Fatalf("expected %q, got %q", "ABCD", dst)
			}

			dst = bytes.Repeat([]byte{'x'}, 4)
			n, err = f.decode(dst, []byte("abcd"))
			if err != nil {
				t.Fatal(err)
			}
			if n != 2 {
				t.Fatalf("expected 2, got %d", n)
			}
			if want := "\xab\xcd\x00x"; string(dst) != want {
				t.Fatalf("expected %q, got %q", want, dst)
			}
		})
	}
}

func TestStrings(t *testing.T) {
	if got := EncodeToString([]byte("hi")); got != "6869" {
		t.Fatalf("expected %q, got %q", "6869", got)
	}
	got, err := DecodeString("6869")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hi" {
		t.Fatalf("expected %q, got %q", "hi", got)
	}
	got, err = DecodeString("68zz")
	if !errors.Is(err, codec.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
	if string(got) != "h" {
		t.Fatalf("expected partial output %q, got %q", "h", got)
	}
}

func TestEmpty(t *testing.T) {
	for _, f := range funcs {
		if n, err := f.encode(nil, nil); n != 0 || err != nil {
			t.Fatalf("%s: encode: (%d, %v)", f.name, n, err)
		}
		if n, err := f.decode(nil, nil); n != 0 || err != nil {
			t.Fatalf("%s: decode: (%d, %v)", f.name, n, err)
		}
	}
}
