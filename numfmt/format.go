// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numfmt

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format formats v according to o. It never fails:
// non-finite values are formatted as "0", and unknown locales or currencies
// fall back to the defaults of ResolveLocale.
// The same (v, o) pair always gives the same string.
func Format(v float64, o Options) string {
	loc, _ := o.Resolve()
	return FormatLocale(v, o, loc)
}

// FormatLocale is like Format, but uses an already resolved locale.
func FormatLocale(v float64, o Options, loc Locale) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	switch o.Family {
	case FamilyCurrency:
		return formatCurrency(v, o, loc)
	case FamilyPercentage:
		return formatPercentage(v, o, loc)
	}
	switch {
	case o.Abbreviate:
		return localize(ShortScale(v, o.MaxTotalDigits, o.decimalPlaces()), loc)
	case o.effectiveNotation() != NotationStandard:
		return toNotation(v, o.Notation, o.decimalPlaces(), o.MaxTotalDigits, loc.Decimal, loc.Minus)
	}
	return formatGrouped(v, o.decimalPlaces(), loc)
}

func (o Options) currencyCode() string {
	if o.Family != FamilyCurrency {
		return ""
	}
	return o.Currency
}

// formatGrouped writes v with locale digit grouping and exactly places fraction digits.
func formatGrouped(v float64, places int, loc Locale) string {
	s := groupedAbs(math.Abs(v), places, loc)
	if v < 0 && !roundsToZero(decimal.NewFromFloat(v), places) {
		return loc.Minus + s
	}
	return s
}

func groupedAbs(abs float64, places int, loc Locale) string {
	p := message.NewPrinter(loc.Tag)
	return p.Sprintf("%v", number.Decimal(abs, number.Scale(places)))
}

// roundsToZero reports whether d is shown as zero with the given places.
// x/text rounds half to even by default, so the check does the same.
func roundsToZero(d decimal.Decimal, places int) bool {
	return d.RoundBank(int32(places)).IsZero()
}

func formatPercentage(v float64, o Options, loc Locale) string {
	places := o.decimalPlaces()
	scaled := decimal.NewFromFloat(v).Shift(2)
	abs, _ := scaled.Abs().Float64()
	var b strings.Builder
	if v < 0 && !roundsToZero(scaled, places) {
		b.WriteString(loc.Minus)
	}
	b.WriteString(loc.PercentPrefix)
	b.WriteString(groupedAbs(abs, places, loc))
	b.WriteString(loc.PercentSuffix)
	return b.String()
}

func formatCurrency(v float64, o Options, loc Locale) string {
	places := o.FixedDecimalPlaces
	if places < 0 {
		places = loc.CurrencyDigits
	}
	var digits string
	var negative bool
	if o.Abbreviate {
		digits = localize(ShortScale(math.Abs(v), o.MaxTotalDigits, places), loc)
		negative = v < 0 && digits != "0"
	} else {
		digits = groupedAbs(math.Abs(v), places, loc)
		negative = v < 0 && !roundsToZero(decimal.NewFromFloat(v), places)
	}
	var b strings.Builder
	if negative {
		b.WriteString(loc.Minus)
	}
	if loc.SymbolAtEnd {
		b.WriteString(digits)
		b.WriteString(loc.SymbolSpacing)
		b.WriteString(loc.CurrencySymbol)
	} else {
		b.WriteString(loc.CurrencySymbol)
		b.WriteString(loc.SymbolSpacing)
		b.WriteString(digits)
	}
	return b.String()
}

// localize replaces the ASCII point and minus of a short-scale string with the locale ones.
func localize(s string, loc Locale) string {
	if rest := strings.TrimPrefix(s, "-"); rest != s {
		s = loc.Minus + rest
	}
	if loc.Decimal != "." {
		s = strings.Replace(s, ".", loc.Decimal, 1)
	}
	return s
}

// Resolve returns the locale conventions for the options, see ResolveLocale.
// The currency is resolved only for FamilyCurrency.
func (o Options) Resolve() (Locale, error) {
	return ResolveLocale(o.Locale, o.currencyCode())
}
