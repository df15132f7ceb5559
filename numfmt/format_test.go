// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numfmt

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocale(t *testing.T) {
	r := require.New(t)

	loc, err := ResolveLocale("en-US", "USD")
	r.NoError(err)
	r.Equal(".", loc.Decimal)
	r.Equal(",", loc.Group)
	r.Equal("-", loc.Minus)
	r.Equal("%", loc.Percent)
	r.Equal("%", loc.PercentSuffix)
	r.Equal("$", loc.CurrencySymbol)
	r.Equal(2, loc.CurrencyDigits)
	r.False(loc.SymbolAtEnd)
	r.Empty(loc.SymbolSpacing)

	loc, err = ResolveLocale("de-DE", "EUR")
	r.NoError(err)
	r.Equal(",", loc.Decimal)
	r.Equal(".", loc.Group)
	r.Equal("€", loc.CurrencySymbol)
	r.True(loc.SymbolAtEnd)
	r.Equal(nbsp, loc.SymbolSpacing)

	loc, err = ResolveLocale("ja-JP", "JPY")
	r.NoError(err)
	r.Equal(0, loc.CurrencyDigits)
	r.False(loc.SymbolAtEnd)

	loc, err = ResolveLocale("en-US", "CHF")
	r.NoError(err)
	r.Equal("CHF", loc.CurrencySymbol)
	r.Equal(nbsp, loc.SymbolSpacing, "alphabetic symbols are spaced")

	loc, err = ResolveLocale("", "")
	r.NoError(err)
	r.Empty(loc.CurrencySymbol)
	r.Equal(".", loc.Decimal)
}

func TestResolveLocaleFallback(t *testing.T) {
	a := assert.New(t)

	loc, err := ResolveLocale("not a locale!", "")
	a.True(errors.Is(err, ErrUnsupportedLocale))
	a.Equal(".", loc.Decimal)

	loc, err = ResolveLocale("en-US", "ZZZ")
	a.True(errors.Is(err, ErrUnsupportedCurrency))
	a.Equal("ZZZ", loc.CurrencySymbol)
	a.Equal(nbsp, loc.SymbolSpacing)

	// cached results carry the same error.
	_, err2 := ResolveLocale("en-US", "ZZZ")
	a.Equal(err, err2)
}

func TestFormat(t *testing.T) {
	a := assert.New(t)
	en := DefaultOptions()
	with := func(o Options, f func(*Options)) Options {
		f(&o)
		return o
	}
	tests := []struct {
		v   float64
		o   Options
		res string
	}{
		{0, en, "0"},
		{1234.5, with(en, func(o *Options) { o.FixedDecimalPlaces = 2 }), "1,234.50"},
		{-1234.4, en, "-1,234"},
		{-0.001, with(en, func(o *Options) { o.FixedDecimalPlaces = 2 }), "0.00"},
		{1234567, with(en, func(o *Options) { o.Abbreviate, o.MaxTotalDigits = true, 3 }), "1.23M"},
		{-1234567, with(en, func(o *Options) { o.Abbreviate, o.MaxTotalDigits = true, 3 }), "-1.23M"},
		{1234567, with(en, func(o *Options) {
			o.Abbreviate, o.MaxTotalDigits, o.Notation = true, 3, NotationScientific
		}), "1.23M"},
		{1234567, with(en, func(o *Options) { o.Notation, o.MaxTotalDigits = NotationScientific, 3 }), "1.23×10⁶"},
		{1234567, with(en, func(o *Options) { o.Notation = NotationEngineering }), "1.234567×10⁶"},
		{0.7532, with(en, func(o *Options) {
			o.Family, o.FixedDecimalPlaces = FamilyPercentage, 2
		}), "75.32%"},
		{-0.5, with(en, func(o *Options) { o.Family = FamilyPercentage }), "-50%"},
		{1234567, with(en, func(o *Options) {
			o.Family, o.Abbreviate, o.MaxTotalDigits = FamilyPercentage, true, 3
		}), "123,456,700%"},
		{1234.5, with(en, func(o *Options) {
			o.Family, o.FixedDecimalPlaces = FamilyCurrency, -1
		}), "$1,234.50"},
		{-1234.5, with(en, func(o *Options) {
			o.Family, o.FixedDecimalPlaces = FamilyCurrency, 2
		}), "-$1,234.50"},
		{1234567, with(en, func(o *Options) {
			o.Family, o.Abbreviate, o.MaxTotalDigits = FamilyCurrency, true, 3
		}), "$1.23M"},
		{1234.5, with(en, func(o *Options) {
			o.Family, o.FixedDecimalPlaces, o.Currency = FamilyCurrency, 2, "CHF"
		}), "CHF" + nbsp + "1,234.50"},
		{1234.5, Options{Family: FamilyCurrency, FixedDecimalPlaces: -1, Locale: "de-DE", Currency: "EUR"},
			"1.234,50" + nbsp + "€"},
		{-1234567, Options{Family: FamilyCurrency, Abbreviate: true, MaxTotalDigits: 3, Locale: "de-DE", Currency: "EUR"},
			"-1,23M" + nbsp + "€"},
		{1234.5, Options{Family: FamilyStandard, FixedDecimalPlaces: 1, Locale: "de-DE"}, "1.234,5"},
		{1234567, Options{Abbreviate: true, MaxTotalDigits: 3, Locale: "de-DE"}, "1,23M"},
		{math.NaN(), en, "0"},
		{math.Inf(-1), en, "0"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Format(test.v, test.o))
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	opts := []Options{
		DefaultOptions(),
		{Family: FamilyCurrency, Locale: "fr-FR", Currency: "EUR", FixedDecimalPlaces: 2},
		{Family: FamilyPercentage, Locale: "tr-TR", FixedDecimalPlaces: 1},
		{Abbreviate: true, MaxTotalDigits: 4, Locale: "en-US"},
		{Notation: NotationEngineering, MaxTotalDigits: 4, Locale: "en-US"},
	}
	for _, o := range opts {
		for _, v := range []float64{0, -1, 0.125, 999.5, 1e6 + 1, -98765.4321} {
			assert.Equal(t, Format(v, o), Format(v, o))
		}
	}
}

func TestFormatLocalizedPercent(t *testing.T) {
	loc, err := ResolveLocale("fr-FR", "")
	require.NoError(t, err)
	s := Format(0.5, Options{Family: FamilyPercentage, Locale: "fr-FR"})
	assert.True(t, strings.HasPrefix(s, "50"), s)
	assert.True(t, strings.HasSuffix(s, loc.PercentSuffix), s)
	assert.Equal(t, "%", loc.Percent)
}

func TestOptionsValidate(t *testing.T) {
	a := assert.New(t)
	a.NoError(DefaultOptions().Validate())
	a.Error(Options{Family: Family(7)}.Validate())
	a.Error(Options{Notation: Notation(-1)}.Validate())

	f, err := ParseFamily("percentage")
	a.NoError(err)
	a.Equal(FamilyPercentage, f)
	_, err = ParseFamily("money")
	a.Error(err)

	n, err := ParseNotation("engineering")
	a.NoError(err)
	a.Equal(NotationEngineering, n)
	a.Equal("scientific", NotationScientific.String())
	a.Equal("Family(9)", Family(9).String())
}
