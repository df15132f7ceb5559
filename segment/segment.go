// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package segment splits formatted numbers into independently animated parts:
// a currency (or sign) symbol, integer digits, decimal digits and a suffix.
package segment

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/avdva/animnum/numfmt"
)

// Kind identifies one of the four segments of a formatted number.
type Kind int

const (
	KindSymbol Kind = iota
	KindInteger
	KindDecimal
	KindSuffix
)

// Kinds lists all segment kinds.
var Kinds = [...]Kind{KindSymbol, KindInteger, KindDecimal, KindSuffix}

var kindNames = [...]string{"symbol", "integer", "decimal", "suffix"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Parts is a formatted number split into segments.
// Reassemble() always equals FullText.
type Parts struct {
	// Symbol is a currency symbol, or a leading percent sign, with its spacing.
	// For prefix symbols a leading minus sign is kept here too.
	Symbol string
	// Integer holds the integer digits with group separators and, unless
	// it went to Symbol, the sign.
	Integer string
	// Decimal holds the decimal separator and the fraction digits, like ".32".
	Decimal string
	// Suffix is a short-scale letter, an exponent like "×10⁶" or a trailing percent sign.
	Suffix string
	// SymbolAtEnd is set when Symbol follows the other segments.
	SymbolAtEnd bool
	FullText    string
}

// Segment returns the text of the segment of the given kind.
func (p Parts) Segment(k Kind) string {
	switch k {
	case KindSymbol:
		return p.Symbol
	case KindInteger:
		return p.Integer
	case KindDecimal:
		return p.Decimal
	case KindSuffix:
		return p.Suffix
	}
	return ""
}

// Order returns the segment kinds in display order.
func (p Parts) Order() []Kind {
	if p.SymbolAtEnd {
		return []Kind{KindInteger, KindDecimal, KindSuffix, KindSymbol}
	}
	return []Kind{KindSymbol, KindInteger, KindDecimal, KindSuffix}
}

// Reassemble joins the segments in display order.
func (p Parts) Reassemble() string {
	var b strings.Builder
	for _, k := range p.Order() {
		b.WriteString(p.Segment(k))
	}
	return b.String()
}

// Decompose splits a string produced by numfmt.FormatLocale with the same family and locale.
// If the expected currency or percent symbol cannot be found, the whole string
// becomes the integer segment.
func Decompose(s string, f numfmt.Family, loc numfmt.Locale) Parts {
	switch f {
	case numfmt.FamilyCurrency:
		return decomposeCurrency(s, loc)
	case numfmt.FamilyPercentage:
		return decomposePercentage(s, loc)
	}
	return decomposeNumber(s, loc)
}

func decomposeCurrency(s string, loc numfmt.Locale) Parts {
	p := Parts{FullText: s}
	sym := loc.CurrencySymbol
	idx := -1
	if sym != "" {
		idx = strings.Index(s, sym)
	}
	if idx < 0 {
		p.Integer = s
		return p
	}
	first := firstDigit(s)
	if first >= 0 && idx > first {
		// the symbol may also be a short-scale letter, like "Q" in "1.5Q Q".
		idx = strings.LastIndex(s, sym)
	}
	var rest string
	if first < 0 || idx < first {
		end := idx + len(sym)
		end += leadingSpacing(s[end:])
		p.Symbol, rest = s[:end], s[end:]
	} else {
		start := idx - trailingSpacing(s[:idx])
		p.Symbol, rest = s[start:], s[:start]
		p.SymbolAtEnd = true
	}
	rest, p.Suffix = splitScaleSuffix(rest)
	p.Integer, p.Decimal = splitDecimal(rest, loc.Decimal)
	return p
}

func decomposePercentage(s string, loc numfmt.Locale) Parts {
	p := Parts{FullText: s}
	idx := -1
	if loc.Percent != "" {
		idx = strings.LastIndex(s, loc.Percent)
	}
	if idx < 0 {
		p.Integer = s
		return p
	}
	var rest string
	if first := firstDigit(s); first >= 0 && idx > first {
		start := idx - trailingSpacing(s[:idx])
		p.Suffix, rest = s[start:], s[:start]
	} else {
		end := idx + len(loc.Percent)
		end += leadingSpacing(s[end:])
		p.Symbol, rest = s[:end], s[end:]
	}
	p.Integer, p.Decimal = splitDecimal(rest, loc.Decimal)
	return p
}

func decomposeNumber(s string, loc numfmt.Locale) Parts {
	p := Parts{FullText: s}
	rest := s
	if idx := strings.Index(s, numfmt.ExponentMarker); idx >= 0 {
		rest, p.Suffix = s[:idx], s[idx:]
	} else {
		rest, p.Suffix = splitScaleSuffix(s)
	}
	p.Integer, p.Decimal = splitDecimal(rest, loc.Decimal)
	return p
}

// splitScaleSuffix cuts a trailing short-scale letter.
func splitScaleSuffix(s string) (rest, suffix string) {
	if s == "" {
		return s, ""
	}
	last := s[len(s)-1:]
	if strings.Contains(numfmt.ShortScaleSuffixes(), last) {
		return s[:len(s)-1], last
	}
	return s, ""
}

// splitDecimal cuts s at the first decimal separator, which stays with the fraction digits.
func splitDecimal(s, dec string) (integer, fraction string) {
	if dec == "" {
		return s, ""
	}
	if idx := strings.Index(s, dec); idx >= 0 {
		return s[:idx], s[idx:]
	}
	return s, ""
}

func firstDigit(s string) int {
	return strings.IndexFunc(s, unicode.IsDigit)
}

// leadingSpacing returns the byte length of the spacing s starts with.
func leadingSpacing(s string) int {
	return len(s) - len(strings.TrimLeftFunc(s, numfmt.IsSpacing))
}

// trailingSpacing returns the byte length of the spacing s ends with.
func trailingSpacing(s string) int {
	return len(s) - len(strings.TrimRightFunc(s, numfmt.IsSpacing))
}

// RuneCount returns the number of characters in the segment of the given kind.
func (p Parts) RuneCount(k Kind) int {
	return utf8.RuneCountInString(p.Segment(k))
}
