// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numfmt

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// nbsp separates a currency symbol from the digits where the locale wants a space.
const nbsp = "\u00a0"

// Locale holds the symbols and conventions needed to format and decompose numbers.
type Locale struct {
	Tag     language.Tag
	Decimal string
	Group   string
	Minus   string
	// Percent is the bare percent sign, PercentPrefix and PercentSuffix are the
	// texts around the digits in the locale percent pattern, spacing included.
	Percent       string
	PercentPrefix string
	PercentSuffix string
	// CurrencyCode is the ISO 4217 code, empty if no currency was requested.
	CurrencyCode   string
	CurrencySymbol string
	// CurrencyDigits is the standard number of fraction digits of the currency.
	CurrencyDigits int
	// SymbolAtEnd is true if the currency symbol follows the digits.
	SymbolAtEnd bool
	// SymbolSpacing is put between the currency symbol and the digits.
	SymbolSpacing string
}

type placement struct {
	atEnd  bool
	spaced bool
}

// currencyPlacements are CLDR standard currency patterns by language.
// Languages not listed write the symbol first, without a space ("$1.00", "¥100").
var currencyPlacements = map[string]placement{
	"bg": {true, true}, "be": {true, true}, "ca": {true, true}, "cs": {true, true},
	"da": {true, true}, "de": {true, true}, "el": {true, true}, "es": {true, true},
	"et": {true, true}, "fi": {true, true}, "fr": {true, true}, "hr": {true, true},
	"hu": {true, true}, "is": {true, true}, "it": {true, true}, "lt": {true, true},
	"lv": {true, true}, "nb": {true, true}, "nn": {true, true}, "no": {true, true},
	"pl": {true, true}, "pt": {true, true}, "ro": {true, true}, "ru": {true, true},
	"sk": {true, true}, "sl": {true, true}, "sr": {true, true}, "sv": {true, true},
	"uk": {true, true}, "vi": {true, true}, "he": {true, true},
	"nl": {false, true},
}

// regionalCurrencyPlacements override currencyPlacements for language-region pairs.
var regionalCurrencyPlacements = map[string]placement{
	"pt-BR":  {false, true},
	"de-AT":  {false, true},
	"de-CH":  {false, true},
	"de-LI":  {false, true},
	"it-CH":  {false, true},
	"es-MX":  {false, false},
	"es-US":  {false, false},
	"es-419": {false, false},
}

type localeKey struct {
	locale, currency string
}

type cachedLocale struct {
	loc Locale
	err error
}

// locales caches resolved locales. Entries are never modified after being stored.
var locales sync.Map

// ResolveLocale returns formatting conventions for the given BCP 47 tag and ISO 4217 code.
// An empty tag means en-US, an empty code means no currency.
// Unknown tags and codes are reported with ErrUnsupportedLocale and ErrUnsupportedCurrency,
// but a usable locale is always returned: en-US conventions for a bad tag and the
// upper-cased code as the symbol for an unknown currency.
func ResolveLocale(locale, code string) (Locale, error) {
	key := localeKey{locale: locale, currency: code}
	if c, ok := locales.Load(key); ok {
		cached := c.(cachedLocale)
		return cached.loc, cached.err
	}
	loc, err := resolveLocale(locale, code)
	locales.Store(key, cachedLocale{loc: loc, err: err})
	return loc, err
}

func resolveLocale(locale, code string) (Locale, error) {
	var errs []error
	tag := language.AmericanEnglish
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %v", ErrUnsupportedLocale, locale, err))
		} else {
			tag = parsed
		}
	}
	p := message.NewPrinter(tag)
	loc := Locale{Tag: tag}
	loc.Group, loc.Decimal = probeSeparators(p.Sprintf("%v", number.Decimal(1234567.5, number.Scale(1))))
	loc.Minus, _ = probeAffixes(p.Sprintf("%v", number.Decimal(-1)))
	if loc.Minus == "" {
		loc.Minus = "-"
	}
	loc.PercentPrefix, loc.PercentSuffix = probeAffixes(p.Sprintf("%v", number.Percent(1)))
	loc.Percent = strings.TrimFunc(loc.PercentPrefix+loc.PercentSuffix, IsSpacing)
	if loc.Percent == "" {
		loc.Percent, loc.PercentSuffix = "%", "%"
	}
	if code != "" {
		if err := resolveCurrency(&loc, p, code); err != nil {
			errs = append(errs, err)
		}
		loc.SymbolAtEnd, loc.SymbolSpacing = currencyPlacement(tag, loc.CurrencySymbol)
	}
	return loc, errors.Join(errs...)
}

func resolveCurrency(loc *Locale, p *message.Printer, code string) error {
	cur, err := currency.ParseISO(code)
	if err != nil {
		loc.CurrencyCode = strings.ToUpper(code)
		loc.CurrencySymbol = loc.CurrencyCode
		loc.CurrencyDigits = 2
		return fmt.Errorf("%w %q: %v", ErrUnsupportedCurrency, code, err)
	}
	loc.CurrencyCode = cur.String()
	loc.CurrencySymbol = p.Sprintf("%v", currency.Symbol(cur))
	loc.CurrencyDigits, _ = currency.Standard.Rounding(cur)
	return nil
}

// currencyPlacement returns where the symbol goes and what separates it from the digits.
// An alphabetic symbol touching the digits gets a space, as CLDR currency spacing requires.
func currencyPlacement(tag language.Tag, symbol string) (atEnd bool, spacing string) {
	base, _ := tag.Base()
	region, _ := tag.Region()
	pl, ok := regionalCurrencyPlacements[base.String()+"-"+region.String()]
	if !ok {
		pl = currencyPlacements[base.String()]
	}
	if pl.spaced {
		return pl.atEnd, nbsp
	}
	var adjacent rune
	if pl.atEnd {
		adjacent, _ = utf8.DecodeRuneInString(symbol)
	} else {
		adjacent, _ = utf8.DecodeLastRuneInString(symbol)
	}
	if unicode.IsLetter(adjacent) {
		return pl.atEnd, nbsp
	}
	return pl.atEnd, ""
}

// probeSeparators reads group and decimal separators from a formatted 1234567.5.
func probeSeparators(s string) (group, dec string) {
	var runs []string
	var run strings.Builder
	seenDigit := false
	for _, r := range s {
		if unicode.IsDigit(r) {
			if seenDigit && run.Len() > 0 {
				runs = append(runs, run.String())
			}
			run.Reset()
			seenDigit = true
			continue
		}
		if seenDigit {
			run.WriteRune(r)
		}
	}
	switch len(runs) {
	case 0:
		return ",", "."
	case 1:
		return "", runs[0]
	}
	return runs[0], runs[len(runs)-1]
}

// probeAffixes returns the texts before the first and after the last digit of s.
func probeAffixes(s string) (prefix, suffix string) {
	first, last := -1, -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if first < 0 {
				first = i
			}
			last = i + utf8.RuneLen(r)
		}
	}
	if first < 0 {
		return "", ""
	}
	return s[:first], s[last:]
}

// IsSpacing reports whether r separates symbols from digits:
// white space, no-break spaces and bidi marks.
func IsSpacing(r rune) bool {
	switch r {
	case '\u00a0', '\u202f', '\u2007', '\u200e', '\u200f', '\u061c':
		return true
	}
	return unicode.IsSpace(r)
}
