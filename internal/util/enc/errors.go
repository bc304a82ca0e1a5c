package enc

import (
	"fmt"

	"github.com/pkg/errors"
)

// Decoding failures. Any error returned from Decode or Validate matches one of these with errors.Is.
var (
	ErrInvalidCharacter = errors.New("invalid base85 character")
	ErrTrailingDigit    = errors.New("single dangling base85 digit")
	ErrOverflow         = errors.New("base85 group overflows 32 bits")
)

// CorruptInputError tells where in the encoded text the decoding failed. Offset is the byte offset of the
// invalid character or, for group errors, of the first character of the group.
type CorruptInputError struct {
	Err    error
	Offset int
}

func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("%v at input byte %d", e.Err, e.Offset)
}

func (e *CorruptInputError) Unwrap() error {
	return e.Err
}

func corrupt(err error, offset int) error {
	return errors.WithStack(&CorruptInputError{
		Err:    err,
		Offset: offset,
	})
}
