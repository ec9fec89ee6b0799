package configuration

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// maximumCount is the smallest floating-point value that doesn't fit in a
// count.
const maximumCount = float64(1 << 64)

// isCountDigit returns whether or not a rune belongs to the numeric portion of
// a count specification.
func isCountDigit(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == ','
}

// ParseCount parses a count from either a plain integer representation or a
// human-friendly SI-suffixed representation (e.g. "100M" or "8.3M"). Plain
// values must be integral, suffixed values must scale to an integral count,
// and binary (IEC) units are rejected.
func ParseCount(text string) (uint64, error) {
	// Split the specification into its numeric portion and its unit.
	trimmed := strings.TrimSpace(text)
	split := strings.IndexFunc(trimmed, func(r rune) bool { return !isCountDigit(r) })
	if split < 0 {
		split = len(trimmed)
	}
	number := strings.ReplaceAll(trimmed[:split], ",", "")
	unit := strings.ToLower(strings.TrimSpace(trimmed[split:]))
	if number == "" {
		return 0, errors.Errorf("invalid count (%s)", text)
	} else if strings.Contains(unit, "i") {
		return 0, errors.Errorf("binary units not supported for counts (%s)", text)
	}

	// Handle plain values.
	if unit == "" {
		value, err := strconv.ParseUint(number, 10, 64)
		if err != nil {
			return 0, errors.Errorf("count must be a non-negative integer (%s)", text)
		}
		return value, nil
	}

	// Compute the unit's scale and the scaled value.
	mantissa, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, errors.Errorf("invalid count (%s)", text)
	}
	scale, err := humanize.ParseBytes("1" + unit)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid count unit (%s)", text)
	}
	scaled := mantissa * float64(scale)
	rounded := math.Round(scaled)

	// Ensure that the result is integral and representable.
	if math.Abs(scaled-rounded) > 1e-9*math.Max(1, rounded) {
		return 0, errors.Errorf("count must be integral (%s)", text)
	} else if rounded >= maximumCount {
		return 0, errors.Errorf("count out of range (%s)", text)
	}
	return uint64(rounded), nil
}

// Count is a uint64 value that supports unmarshalling from both human-friendly
// string representations and numeric representations. Configuration layers
// hold counts by pointer so that an explicit zero is distinguishable from an
// unspecified value.
type Count uint64

// NewCount returns a pointer to a count with the specified value.
func NewCount(value uint64) *Count {
	count := Count(value)
	return &count
}

// Value returns the count's value. A nil count has value 0.
func (c *Count) Value() uint64 {
	if c == nil {
		return 0
	}
	return uint64(*c)
}

// UnmarshalText implements the text unmarshalling interface.
func (c *Count) UnmarshalText(textBytes []byte) error {
	// Parse and store the value.
	value, err := ParseCount(string(textBytes))
	if err != nil {
		return err
	}
	*c = Count(value)

	// Success.
	return nil
}

// UnmarshalYAML implements the YAML unmarshalling interface. Numeric scalars are
// decoded through their textual representation.
func (c *Count) UnmarshalYAML(unmarshal func(interface{}) error) error {
	// Decode the scalar as text.
	var text string
	if err := unmarshal(&text); err != nil {
		return err
	}

	// Parse the text.
	return c.UnmarshalText([]byte(text))
}
