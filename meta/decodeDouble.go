package meta

import (
	"fmt"
	"math"
	"strconv"

	"greg-hacke/keyence-meta/tags"
)

// DecodeFailure is the displayed value for a double-encoded field whose
// raw text does not parse as a 64-bit integer.
const DecodeFailure = "Could not decode"

// DecodeDouble reinterprets a decimal 64-bit integer string as the bit
// pattern of an IEEE 754 double. This is a bit-cast, not a numeric
// conversion: "4607182418800017408" decodes to exactly 1.0.
func DecodeDouble(raw string) (float64, error) {
	bits, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a 64-bit bit pattern: %q", raw)
	}
	return math.Float64frombits(bits), nil
}

// FormatField renders a field's display value. Double-encoded fields are
// decoded and formatted with six decimal places, with any unit conversion
// from tags.Scales applied after decoding; other fields pass through
// unchanged. Decode failures surface as the DecodeFailure marker, never
// as an error.
func FormatField(f Field) string {
	if !f.Double {
		return f.Value
	}
	v, err := DecodeDouble(f.Value)
	if err != nil {
		return DecodeFailure
	}
	if scale, ok := tags.Scales[f.Key]; ok {
		return fmt.Sprintf("%.6f %s", v/scale.Divisor, scale.Suffix)
	}
	return fmt.Sprintf("%.6f", v)
}
