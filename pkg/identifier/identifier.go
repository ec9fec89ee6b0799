package identifier

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/blockpi/blockpi/pkg/encoding"
)

const (
	// PrefixRun is the prefix used for run identifiers.
	PrefixRun = "run_"

	// targetBase62Length is the length to which the Base62 portion of
	// identifiers is padded. It is the number of Base62 digits required to
	// represent any 128-bit value.
	targetBase62Length = 22
)

// New generates a new collision-resistant identifier with the specified prefix.
// The identifier is derived from a random (version 4) UUID.
func New(prefix string) (string, error) {
	// Create the random value.
	value, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "unable to generate random UUID")
	}

	// Encode the value and pad it to a consistent length.
	encoded := encoding.EncodeBase62(value[:])
	if padding := targetBase62Length - len(encoded); padding > 0 {
		encoded = strings.Repeat("0", padding) + encoded
	}

	// Done.
	return prefix + encoded, nil
}

// IsValid determines whether or not a string is a valid identifier with the
// specified prefix.
func IsValid(identifier, prefix string) bool {
	// Ensure that the prefix is present and strip it.
	if !strings.HasPrefix(identifier, prefix) {
		return false
	}
	value := identifier[len(prefix):]

	// Ensure that the remainder has the expected length and alphabet.
	return len(value) == targetBase62Length && encoding.IsBase62(value)
}
