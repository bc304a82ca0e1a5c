package base85

import (
	"testing"

	"github.com/bokysan/base85/internal/util/enc"
	"github.com/stretchr/testify/require"
)

func Test_AlphabetMatchesTable(t *testing.T) {
	require.Len(t, Alphabet, 85)
	require.Equal(t, enc.RFC1924.String(), Alphabet)
}

func Test_Vectors(t *testing.T) {
	require.Equal(t, "VE", Encode([]byte{0x61}))
	require.Equal(t, "", Encode([]byte{}))

	decoded, err := Decode("VE")
	require.NoError(t, err)
	require.Equal(t, []byte{0x61}, decoded)

	decoded, err = Decode("")
	require.NoError(t, err)
	require.Equal(t, []byte{}, decoded)

	decoded, err = Decode("V E")
	require.NoError(t, err)
	require.Equal(t, []byte{0x61}, decoded)

	_, err = Decode("@")
	require.ErrorIs(t, err, ErrTrailingDigit)
	require.Error(t, Validate("@"))
}

func Test_ValidateAgreesWithDecode(t *testing.T) {
	for _, text := range []string{"", "VE", "V E", "@", "]", "VE]", "|NsC0", "|NsC", "~~~~~", "VPRom\u00a0VE", "VPRomV"} {
		_, decodeErr := Decode(text)
		validateErr := Validate(text)
		require.Equal(t, decodeErr == nil, validateErr == nil, "text %q: decode=%v validate=%v", text, decodeErr, validateErr)
	}
}

func Test_StdEncoding(t *testing.T) {
	require.Equal(t, "Base85", StdEncoding.Name())
	require.Equal(t, "VE", StdEncoding.Encode([]byte{0x61}))

	decoded, err := StdEncoding.Decode("V E")
	require.NoError(t, err)
	require.Equal(t, []byte{0x61}, decoded)

	_, err = StdEncoding.Decode("VE]")
	require.ErrorIs(t, err, ErrInvalidCharacter)
	require.Error(t, StdEncoding.Validate("VE]"))
}
