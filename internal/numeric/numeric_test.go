package numeric

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "0", want: 0},
		{in: "123", want: 123},
		{in: "5.", want: 5},
		{in: ".5", want: 0.5},
		{in: "-12.25", want: -12.25},
		{in: "1e+21", want: 1e21},
		{in: "1.5e-7", want: 1.5e-7},
		{in: "12abc", want: 12},
		{in: "1e", want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := Parse(tc.in); got != tc.want {
				t.Fatalf("Parse(%q) = %g, want %g", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseSpecialValues(t *testing.T) {
	for _, in := range []string{"", "-", ".", "NaN", "Na", "abc"} {
		if got := Parse(in); !math.IsNaN(got) {
			t.Fatalf("Parse(%q) = %g, want NaN", in, got)
		}
	}

	if got := Parse("Infinity5"); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf, got %g", got)
	}
	if got := Parse("-Infinity"); !math.IsInf(got, -1) {
		t.Fatalf("expected -Inf, got %g", got)
	}
	if got := Parse("1e999"); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf on overflow, got %g", got)
	}
}

func TestFormat(t *testing.T) {
	// Summed at run time: a constant 0.1 + 0.2 is exactly 0.3.
	a, b := 0.1, 0.2

	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0"},
		{in: math.Copysign(0, -1), want: "0"},
		{in: 4, want: "4"},
		{in: -5, want: "-5"},
		{in: a + b, want: "0.30000000000000004"},
		{in: 1.0 / 3.0, want: "0.3333333333333333"},
		{in: 0.000001, want: "0.000001"},
		{in: 1.5e-7, want: "1.5e-7"},
		{in: 123456789012345680000, want: "123456789012345680000"},
		{in: 1e21, want: "1e+21"},
		{in: -2.5e25, want: "-2.5e+25"},
		{in: math.NaN(), want: "NaN"},
		{in: math.Inf(1), want: "Infinity"},
		{in: math.Inf(-1), want: "-Infinity"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := Format(tc.in); got != tc.want {
				t.Fatalf("Format(%g) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestToFixed(t *testing.T) {
	tests := []struct {
		in     float64
		digits int
		want   string
	}{
		{in: 8300, digits: 2, want: "8300.00"},
		{in: 83, digits: 4, want: "83.0000"},
		{in: 0.125, digits: 2, want: "0.13"},
		{in: 0.375, digits: 2, want: "0.38"},
		{in: 2.5, digits: 0, want: "3"},
		{in: 1.03125, digits: 4, want: "1.0313"},
		{in: -0.125, digits: 2, want: "-0.13"},
		{in: 1.005, digits: 2, want: "1.00"},
		{in: 0.12, digits: 2, want: "0.12"},
		{in: math.Copysign(0, -1), digits: 2, want: "0.00"},
		{in: 1e21, digits: 2, want: "1e+21"},
		{in: math.NaN(), digits: 2, want: "NaN"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := ToFixed(tc.in, tc.digits); got != tc.want {
				t.Fatalf("ToFixed(%g, %d) = %q, want %q", tc.in, tc.digits, got, tc.want)
			}
		})
	}
}
