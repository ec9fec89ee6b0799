package encoding

import (
	"strings"

	"github.com/eknkc/basex"
)

// Base62Alphabet is the digit alphabet used for Base62 run identifiers, in
// ascending digit order.
const Base62Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// base62 is the shared Base62 encoding. It is safe for concurrent use.
var base62 = mustNewBaseXEncoding(Base62Alphabet)

// mustNewBaseXEncoding creates an encoding for the specified alphabet, panicking
// if the alphabet is invalid.
func mustNewBaseXEncoding(alphabet string) *basex.Encoding {
	encoding, err := basex.NewEncoding(alphabet)
	if err != nil {
		panic("invalid encoding alphabet: " + err.Error())
	}
	return encoding
}

// EncodeBase62 encodes a byte sequence as Base62 text. Each leading zero byte
// is encoded as a leading '0' digit.
func EncodeBase62(value []byte) string {
	return base62.Encode(value)
}

// IsBase62 returns whether or not text is a non-empty sequence of Base62
// digits.
func IsBase62(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !strings.ContainsRune(Base62Alphabet, r) {
			return false
		}
	}
	return true
}
