package enc

type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// Validate reports every problem which would make Decode fail
	Validate(string) error

	// EncodedLen returns the length of the encoding of n bytes
	EncodedLen(n int) int

	// DecodedLen returns the maximum number of bytes n encoded characters decode into
	DecodedLen(n int) int

	// TestPatterns returns a list of valid encoded strings for this encoding
	TestPatterns() []string

	// Ratio is the number of encoded characters produced per input byte
	Ratio() float64
}

var _ Encoder = &RFC1924Encoder{}
