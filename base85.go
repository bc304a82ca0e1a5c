// Package base85 encodes and decodes the Base85 variant described in RFC1924.
//
// Every 4 bytes of input become 5 characters from the alphabet
//
//	0-9 A-Z a-z ! # $ % & ( ) * + - ; < = > ? @ ^ _ ` { | } ~
//
// A trailing group of 1, 2 or 3 bytes becomes 2, 3 or 4 characters; no padding characters are
// written. Decoding ignores whitespace anywhere in the input.
//
// This is not ASCII85 (as used by PostScript and PDF) nor Z85.
package base85

import (
	"github.com/bokysan/base85/internal/util/enc"
)

// Alphabet lists the 85 characters of the encoding in digit order.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~"

var (
	// ErrInvalidCharacter is returned when the text contains a character that is neither whitespace nor
	// part of the alphabet.
	ErrInvalidCharacter = enc.ErrInvalidCharacter
	// ErrTrailingDigit is returned when the text ends with a single character, which can not encode a byte.
	ErrTrailingDigit = enc.ErrTrailingDigit
	// ErrOverflow is returned when a group of characters encodes a number larger than 2^32-1.
	ErrOverflow = enc.ErrOverflow
)

// CorruptInputError carries the failure and its byte offset into the text.
type CorruptInputError = enc.CorruptInputError

// Encoder bundles the operations of an encoding, for code that wants to pass the encoding around as a value.
type Encoder = enc.Encoder

// StdEncoding is the RFC1924 encoding as an Encoder.
var StdEncoding Encoder = &enc.RFC1924Encoder{}

// Encode returns the encoding of src.
func Encode(src []byte) string {
	return enc.Encode(src)
}

// Decode returns the bytes represented by text. On failure the returned error matches ErrInvalidCharacter,
// ErrTrailingDigit or ErrOverflow with errors.Is, and no data is returned.
func Decode(text string) ([]byte, error) {
	return enc.Decode(text)
}

// Validate reports every problem that would make Decode fail, or nil if text is valid.
func Validate(text string) error {
	return enc.Validate(text)
}

// EncodedLen returns the length of the encoding of n bytes.
func EncodedLen(n int) int {
	return enc.EncodedLen(n)
}

// DecodedLen returns the maximum number of bytes that n characters decode into.
func DecodedLen(n int) int {
	return enc.DecodedLen(n)
}
