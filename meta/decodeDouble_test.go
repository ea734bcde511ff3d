package meta

import (
	"math"
	"strconv"
	"testing"
)

func TestDecodeDoubleBitCast(t *testing.T) {
	// 4607182418800017408 is the bit pattern of 1.0; a numeric conversion
	// would have produced 4.6e18.
	v, err := DecodeDouble("4607182418800017408")
	if err != nil {
		t.Fatal(err)
	}
	if v != 1.0 {
		t.Fatalf("decoded %v, expected exactly 1.0", v)
	}
}

func TestDecodeDoubleKnownValues(t *testing.T) {
	cases := []struct {
		raw  string
		bits uint64
	}{
		{"4660518447848644499", 4660518447848644499}, // 3774.417917 nm/pixel
		{"4602317050157652502", 4602317050157652502}, // focus 0.479918
		{"4596373779694328218", 4596373779694328218}, // NA 0.2
		{"4626322717216342016", 4626322717216342016}, // WD 20.0
		{"0", 0},
		{"18446744073709551615", math.MaxUint64},
	}
	for _, tc := range cases {
		v, err := DecodeDouble(tc.raw)
		if err != nil {
			t.Fatalf("decode %q: %v", tc.raw, err)
		}
		if got := math.Float64bits(v); got != tc.bits {
			t.Fatalf("decode %q: bits %d, expected %d", tc.raw, got, tc.bits)
		}
	}
}

func TestDecodeDoubleRoundTrip(t *testing.T) {
	patterns := []uint64{
		0,
		1,
		4607182418800017408,
		4660518447848644499,
		math.Float64bits(3.14159265358979),
		math.Float64bits(-2.5),
		math.Float64bits(math.Inf(1)),
		1 << 63,
		math.MaxUint64,
	}
	for _, bits := range patterns {
		v, err := DecodeDouble(strconv.FormatUint(bits, 10))
		if err != nil {
			t.Fatalf("decode %d: %v", bits, err)
		}
		if got := math.Float64bits(v); got != bits {
			t.Fatalf("round trip of %d yielded %d", bits, got)
		}
	}
}

func TestDecodeDoubleFailures(t *testing.T) {
	for _, raw := range []string{
		"",
		"abc",
		"-1",
		"18446744073709551616", // 2^64
		"12.5",
		"0x10",
		" 42",
	} {
		if _, err := DecodeDouble(raw); err == nil {
			t.Errorf("decode %q: expected failure", raw)
		}
	}
}

func TestFormatFieldScaling(t *testing.T) {
	cases := []struct {
		name string
		f    Field
		want string
	}{
		{"calibration scaled", Field{Key: "Calibration", Value: "4660518447848644499", Present: true, Double: true}, "3.774418 um/pixel"},
		{"plain double", Field{Key: "Focus", Value: "4602317050157652502", Present: true, Double: true}, "0.479918"},
		{"whole double", Field{Key: "WorkingDistance", Value: "4626322717216342016", Present: true, Double: true}, "20.000000"},
		{"decode failure", Field{Key: "Focus", Value: "not-a-number", Present: true, Double: true}, DecodeFailure},
		{"empty double", Field{Key: "Focus", Value: "", Present: true, Double: true}, DecodeFailure},
		{"passthrough", Field{Key: "Comment", Value: "HeLa cells", Present: true}, "HeLa cells"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatField(tc.f); got != tc.want {
				t.Fatalf("FormatField = %q, expected %q", got, tc.want)
			}
		})
	}
}
