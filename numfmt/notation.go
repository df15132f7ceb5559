// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avdva/animnum/internal/mathutil"
)

const (
	// ExponentMarker separates the mantissa and the raised exponent.
	ExponentMarker = "×10"

	// SuperscriptMinus is the sign of negative exponents.
	SuperscriptMinus = '⁻'
)

var superscriptDigits = [...]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

// ToNotation formats v in scientific or engineering notation, like "1.23×10⁶".
// Digits are truncated, never rounded: with maxTotalDigits > 0 at most that many
// mantissa digits are kept; otherwise, if fallback > 0, at most fallback fraction digits;
// otherwise all significant digits of v. Trailing zeros are removed from the mantissa.
// In engineering notation the exponent is always divisible by 3.
// Zero is formatted as "0". NotationStandard is treated as scientific.
func ToNotation(v float64, n Notation, fallback, maxTotalDigits int) string {
	return toNotation(v, n, fallback, maxTotalDigits, ".", "-")
}

func toNotation(v float64, n Notation, fallback, maxTotalDigits int, point, minus string) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	digits, exp := significantDigits(math.Abs(v))
	intDigits := 1
	if n == NotationEngineering {
		engExp := mathutil.FloorDiv(exp, 3) * 3
		intDigits += exp - engExp
		exp = engExp
	}
	keep := len(digits)
	switch {
	case maxTotalDigits > 0:
		keep = maxTotalDigits
	case fallback > 0:
		keep = intDigits + fallback
	}
	if keep < len(digits) {
		digits = digits[:keep]
	}
	// the first digit is never zero, so at least one digit survives.
	digits = strings.TrimRight(digits, "0")
	if pad := intDigits - len(digits); pad > 0 {
		digits += strings.Repeat("0", pad)
	}
	var b strings.Builder
	if v < 0 {
		b.WriteString(minus)
	}
	b.WriteString(digits[:intDigits])
	if len(digits) > intDigits {
		b.WriteString(point)
		b.WriteString(digits[intDigits:])
	}
	b.WriteString(ExponentMarker)
	b.WriteString(superscript(exp))
	return b.String()
}

// significantDigits returns the shortest decimal digits of f > 0 without leading and trailing zeros,
// and the exponent e, such that f = d.ddd × 10^e.
func significantDigits(f float64) (digits string, e int) {
	d := decimal.NewFromFloat(f)
	digits = d.Coefficient().String()
	e = int(d.Exponent())
	trimmed := strings.TrimRight(digits, "0")
	e += len(digits) - len(trimmed)
	return trimmed, e + len(trimmed) - 1
}

// SuperscriptDigit returns the value of an exponent digit.
func SuperscriptDigit(r rune) (int, bool) {
	for i, d := range superscriptDigits {
		if r == d {
			return i, true
		}
	}
	return 0, false
}

func superscript(e int) string {
	var b strings.Builder
	if e < 0 {
		b.WriteRune(SuperscriptMinus)
	}
	for _, r := range strconv.Itoa(mathutil.AbsInt(e)) {
		b.WriteRune(superscriptDigits[r-'0'])
	}
	return b.String()
}
