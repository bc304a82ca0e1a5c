package base85_test

import (
	"errors"
	"fmt"

	"github.com/bokysan/base85"
)

func ExampleEncode() {
	fmt.Println(base85.Encode([]byte("a")))
	fmt.Println(base85.Encode([]byte("relimitation")))
	// Output:
	// VE
	// a%F63ZE192bZKvH
}

func ExampleDecode() {
	data, err := base85.Decode("a%F63 ZE192\nbZKvH")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(data))
	// Output: relimitation
}

func ExampleDecode_invalid() {
	_, err := base85.Decode("VE]")
	fmt.Println(errors.Is(err, base85.ErrInvalidCharacter))

	var corrupt *base85.CorruptInputError
	if errors.As(err, &corrupt) {
		fmt.Println(corrupt.Offset)
	}
	// Output:
	// true
	// 2
}

func ExampleStdEncoding() {
	encoder := base85.StdEncoding

	encoded := encoder.Encode([]byte("aaaaa"))
	fmt.Println(encoded, len(encoded) == encoder.EncodedLen(5))

	data, err := encoder.Decode(encoded)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(data))
	// Output:
	// VPRomVE true
	// aaaaa
}
