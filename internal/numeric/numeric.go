// Package numeric reads and writes numbers the way the calculator display
// and the converter amount field show them.
package numeric

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// Parse reads the longest numeric prefix of s. Input without one
// parses as NaN, so "5." is 5 and "-" is NaN.
func Parse(s string) float64 {
	m := numericPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}

	if strings.HasSuffix(m, "Infinity") {
		if m[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Out of range still carries ±Inf or 0.
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

// Format renders f the way the display shows numbers: shortest
// round-trip digits, exponent form outside [1e-6, 1e21), and "0" for
// negative zero.
func Format(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToFixed writes f with exactly digits decimals. An exact tie rounds away
// from zero, so 0.125 gives "0.13"; strconv would round it to even.
// Magnitudes from 1e21 up, NaN and the infinities fall back to Format.
func ToFixed(f float64, digits int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= 1e21 {
		return Format(f)
	}
	if f == 0 {
		f = 0 // drops the sign of -0
	}

	if isTie(f, digits) {
		f = math.Nextafter(f, math.Copysign(math.Inf(1), f))
	}
	return strconv.FormatFloat(f, 'f', digits, 64)
}

// isTie reports whether f lies exactly halfway between two values with
// digits decimals.
func isTie(f float64, digits int) bool {
	exact := new(big.Float).SetFloat64(f).Text('f', exactDigits)
	dot := strings.IndexByte(exact, '.')
	rest := exact[dot+1+digits:]
	return rest[0] == '5' && strings.TrimRight(rest[1:], "0") == ""
}

// exactDigits covers the longest decimal expansion of a float64.
const exactDigits = 1100
