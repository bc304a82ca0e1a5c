package enc

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode"
)

const (
	// padDigit fills a short group up to five digits while decoding. It is the highest digit, so that the
	// group decodes to the largest value sharing its prefix and the kept bytes are not rounded down.
	padDigit = Base - 1
)

// EncodedLen returns the length of the encoding of n bytes.
func EncodedLen(n int) int {
	l := n / 4 * 5
	if r := n % 4; r != 0 {
		l += r + 1
	}
	return l
}

// DecodedLen returns the maximum number of bytes n encoded characters decode into. Whitespace in the
// input only makes the result shorter.
func DecodedLen(n int) int {
	l := n / 5 * 4
	if r := n % 5; r > 1 {
		l += r - 1
	}
	return l
}

// Encode encodes src into the RFC1924 alphabet. Every 4 bytes become 5 characters; a trailing group of
// 1, 2 or 3 bytes becomes 2, 3 or 4 characters.
func Encode(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))

	di := 0
	for len(src) > 0 {
		var chunk [4]byte
		n := copy(chunk[:], src)
		src = src[n:]

		v := binary.BigEndian.Uint32(chunk[:])
		var digits [5]byte
		for i := len(digits) - 1; i >= 0; i-- {
			digits[i] = RFC1924.Char(byte(v % Base))
			v /= Base
		}

		// The digits past n+1 only describe the zero padding.
		di += copy(dst[di:], digits[:n+1])
	}

	return string(dst)
}

// groupValue computes the value of five digits, most significant first. It returns false if the value
// does not fit into 32 bits.
func groupValue(digits *[5]byte) (uint32, bool) {
	var v uint64
	for _, d := range digits {
		v = v*Base + uint64(d)
	}
	if v > math.MaxUint32 {
		return 0, false
	}
	return uint32(v), true
}

// padGroup fills digits after the first n with padDigit.
func padGroup(digits *[5]byte, n int) {
	for i := n; i < len(digits); i++ {
		digits[i] = padDigit
	}
}

// Decode decodes RFC1924 encoded text. Whitespace (as defined by unicode.IsSpace) is ignored wherever it
// appears. On failure no data is returned and the error is a *CorruptInputError.
func Decode(text string) ([]byte, error) {
	dst := make([]byte, 0, DecodedLen(len(text)))

	var digits [5]byte
	var buf [4]byte
	n := 0
	start := 0

	for i, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		d, ok := RFC1924.Digit(r)
		if !ok {
			return nil, corrupt(ErrInvalidCharacter, i)
		}
		if n == 0 {
			start = i
		}
		digits[n] = d
		n++

		if n == len(digits) {
			v, ok := groupValue(&digits)
			if !ok {
				return nil, corrupt(ErrOverflow, start)
			}
			binary.BigEndian.PutUint32(buf[:], v)
			dst = append(dst, buf[:]...)
			n = 0
		}
	}

	switch n {
	case 0:
	case 1:
		return nil, corrupt(ErrTrailingDigit, start)
	default:
		padGroup(&digits, n)
		v, ok := groupValue(&digits)
		if !ok {
			return nil, corrupt(ErrOverflow, start)
		}
		binary.BigEndian.PutUint32(buf[:], v)
		dst = append(dst, buf[:n-1]...)
	}

	return dst, nil
}

// -------------------------------------------------------

// RFC1924Encoder describes the encoding and gives access to it through the Encoder interface.
type RFC1924Encoder struct {
}

func (b *RFC1924Encoder) Name() string {
	return "Base85"
}

func (b *RFC1924Encoder) String() string {
	return fmt.Sprintf("%v (RFC1924)", b.Name())
}

func (b *RFC1924Encoder) Encode(data []byte) string {
	return Encode(data)
}

func (b *RFC1924Encoder) Decode(data string) ([]byte, error) {
	return Decode(data)
}

func (b *RFC1924Encoder) Validate(data string) error {
	return Validate(data)
}

func (b *RFC1924Encoder) EncodedLen(n int) int {
	return EncodedLen(n)
}

func (b *RFC1924Encoder) DecodedLen(n int) int {
	return DecodedLen(n)
}

// TestPatterns are canonical encodings: each one decodes and encodes back to itself.
func (b *RFC1924Encoder) TestPatterns() []string {
	return []string{
		rfc1924Alphabet,
		"|NsC0|NsC0",
		"0000000000",
		"VPRomVPRn",
	}
}

func (b *RFC1924Encoder) Ratio() float64 {
	return 5.0 / 4.0
}
