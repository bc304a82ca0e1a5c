package enc

import (
	"unicode"

	"github.com/hashicorp/go-multierror"
)

// Validate checks that text can be decoded. Unlike Decode it does not stop at the first problem: every
// invalid character and every broken group is reported. It returns nil if Decode would succeed.
func Validate(text string) error {
	var errs error

	var digits [5]byte
	n := 0
	start := 0

	for i, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		d, ok := RFC1924.Digit(r)
		if !ok {
			errs = multierror.Append(errs, corrupt(ErrInvalidCharacter, i))
			continue
		}
		if n == 0 {
			start = i
		}
		digits[n] = d
		n++

		if n == len(digits) {
			if _, ok := groupValue(&digits); !ok {
				errs = multierror.Append(errs, corrupt(ErrOverflow, start))
			}
			n = 0
		}
	}

	switch n {
	case 0:
	case 1:
		errs = multierror.Append(errs, corrupt(ErrTrailingDigit, start))
	default:
		padGroup(&digits, n)
		if _, ok := groupValue(&digits); !ok {
			errs = multierror.Append(errs, corrupt(ErrOverflow, start))
		}
	}

	return errs
}
