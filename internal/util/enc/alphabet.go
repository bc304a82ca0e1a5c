package enc

import (
	log "github.com/sirupsen/logrus"
)

const (
	// Base is the radix of the encoding.
	Base = 85

	rfc1924Alphabet = "0123456789" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"!#$%&()*+-;<=>?@^_`{|}~"

	noDigit = 0xFF
)

// RFC1924 is the alphabet from RFC1924, in digit order.
var RFC1924 = NewAlphabet(rfc1924Alphabet)

// Alphabet maps digit values 0..84 to characters and back.
type Alphabet struct {
	encode [Base]byte
	decode [256]byte
}

// NewAlphabet creates a new alphabet from the given string. The position of a character in the string is
// its digit value.
//
// It panics if the string is not 85 bytes long, is not ASCII or contains the same character twice.
func NewAlphabet(s string) *Alphabet {
	if len(s) != Base {
		log.Panicf("alphabet must be %d bytes long, got %d", Base, len(s))
	}

	a := new(Alphabet)
	for i := range a.decode {
		a.decode[i] = noDigit
	}

	for i := 0; i < Base; i++ {
		c := s[i]
		if c >= 0x80 {
			log.Panicf("alphabet character at position %d is not ASCII: 0x%02x", i, c)
		}
		if a.decode[c] != noDigit {
			log.Panicf("alphabet character %q repeats at position %d", c, i)
		}
		a.encode[i] = c
		a.decode[c] = byte(i)
	}

	return a
}

// Char returns the character for the digit d. d must be lower than 85.
func (a *Alphabet) Char(d byte) byte {
	return a.encode[d]
}

// Digit returns the digit value of r and true, or false if r is not part of the alphabet.
func (a *Alphabet) Digit(r rune) (byte, bool) {
	if r < 0 || r >= 0x80 {
		return 0, false
	}
	d := a.decode[r]
	return d, d != noDigit
}

func (a *Alphabet) String() string {
	return string(a.encode[:])
}
