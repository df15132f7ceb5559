// Copyright 2020 Aleksandr Demakin. All rights reserved.

package segment

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/avdva/animnum/numfmt"
)

// Class is the role of a character inside a formatted number.
// Renderers use it to size the character's slot.
type Class int

const (
	ClassDigit Class = iota
	ClassDecimalSeparator
	ClassGroupSeparator
	ClassLetterSuffix
	ClassCurrencySymbol
	ClassSign
)

var classNames = [...]string{"digit", "decimal-separator", "group-separator", "letter-suffix", "currency-symbol", "sign"}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// Classify returns the class of every character of a segment.
// The class follows from the segment kind and the locale symbols, so a no-break
// space inside the integer part is a group separator, while the same space next
// to a currency symbol is spacing of that symbol.
func Classify(k Kind, seg string, loc numfmt.Locale) []Class {
	classes := make([]Class, 0, len(seg))
	decimalEnd := 0
	if k == KindDecimal && loc.Decimal != "" && strings.HasPrefix(seg, loc.Decimal) {
		decimalEnd = len(loc.Decimal)
	}
	for i, r := range seg {
		classes = append(classes, classify(k, r, i < decimalEnd, loc))
	}
	return classes
}

func classify(k Kind, r rune, inDecimalSep bool, loc numfmt.Locale) Class {
	switch k {
	case KindSymbol:
		switch {
		case isSign(r, loc):
			return ClassSign
		case numfmt.IsSpacing(r):
			return ClassGroupSeparator
		}
		return ClassCurrencySymbol
	case KindInteger:
		switch {
		case unicode.IsDigit(r):
			return ClassDigit
		case isSign(r, loc):
			return ClassSign
		}
		return ClassGroupSeparator
	case KindDecimal:
		switch {
		case inDecimalSep:
			return ClassDecimalSeparator
		case unicode.IsDigit(r):
			return ClassDigit
		}
		return ClassGroupSeparator
	}
	switch {
	case numfmt.IsSpacing(r):
		return ClassGroupSeparator
	case unicode.IsDigit(r):
		return ClassDigit
	case isSuperscriptDigit(r):
		return ClassDigit
	case r == numfmt.SuperscriptMinus:
		return ClassSign
	}
	return ClassLetterSuffix
}

func isSign(r rune, loc numfmt.Locale) bool {
	switch r {
	case '-', '+', '\u2212':
		return true
	}
	return strings.ContainsRune(loc.Minus, r)
}

func isSuperscriptDigit(r rune) bool {
	_, ok := numfmt.SuperscriptDigit(r)
	return ok
}
