// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numfmt

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avdva/animnum/internal/mathutil"
)

// shortScales are the short-scale brackets, smallest first.
var shortScales = [...]struct {
	exp    int
	suffix string
}{
	{0, ""},
	{3, "K"},
	{6, "M"},
	{9, "B"},
	{12, "T"},
	{15, "Q"},
}

var thousand = decimal.NewFromInt(1000)

// ShortScaleSuffixes returns the suffix letters ShortScale may append.
func ShortScaleSuffixes() string {
	var b strings.Builder
	for _, s := range shortScales[1:] {
		b.WriteString(s.suffix)
	}
	return b.String()
}

// shortScaleIndex returns the index of the largest bracket whose threshold abs reaches.
func shortScaleIndex(abs float64) int {
	for i := len(shortScales) - 1; i > 0; i-- {
		if abs >= float64(mathutil.Pow10(shortScales[i].exp)) {
			return i
		}
	}
	return 0
}

// DecimalPlacesFor returns how many fraction digits may be shown for v without
// exceeding maxTotalDigits digits in total.
// If maxTotalDigits <= 0, fallback is returned unchanged.
// When abbreviated is true, v must be the value before scaling: its integer digits
// are reduced by 3, 6, 9, 12 or 15 according to the short-scale bracket v falls into.
func DecimalPlacesFor(v float64, abbreviated bool, maxTotalDigits, fallback int) int {
	if maxTotalDigits <= 0 {
		return fallback
	}
	var exp int
	if abbreviated {
		exp = shortScales[shortScaleIndex(math.Abs(v))].exp
	}
	return placesAtScale(v, exp, maxTotalDigits, fallback)
}

func placesAtScale(v float64, exp, maxTotalDigits, fallback int) int {
	if maxTotalDigits <= 0 {
		return fallback
	}
	digits := mathutil.IntegerDigits(v) - exp
	if digits < 0 {
		digits = 0
	}
	if places := maxTotalDigits - digits; places > 0 {
		return places
	}
	return 0
}

// ShortScale formats v with a K, M, B, T or Q suffix, like "1.2M".
// The scaled value is rounded to the places given by DecimalPlacesFor,
// then trailing zeros and a dangling point are removed from the text.
// Values below one thousand get no suffix. Zero is always "0".
func ShortScale(v float64, maxTotalDigits, fallback int) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	d := decimal.NewFromFloat(v)
	i := shortScaleIndex(math.Abs(v))
	for {
		s := shortScales[i]
		places := placesAtScale(v, s.exp, maxTotalDigits, fallback)
		if places < 0 {
			places = 0
		}
		scaled := d.Shift(-int32(s.exp)).Round(int32(places))
		// rounding may carry into the next bracket: 999.9995K is 1M.
		if i+1 < len(shortScales) && scaled.Abs().GreaterThanOrEqual(thousand) {
			i++
			continue
		}
		return trimFractionZeros(scaled.StringFixed(int32(places))) + s.suffix
	}
}

// trimFractionZeros removes trailing zeros after the point and the point itself, if dangling.
func trimFractionZeros(s string) string {
	if !strings.ContainsRune(s, '.') {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
