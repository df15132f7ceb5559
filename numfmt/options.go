// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numfmt

import "fmt"

// Family selects the kind of number being formatted.
type Family int

const (
	// FamilyStandard formats plain grouped numbers.
	FamilyStandard Family = iota
	// FamilyCurrency formats money amounts with a locale currency symbol.
	FamilyCurrency
	// FamilyPercentage multiplies the value by 100 and adds the locale percent sign.
	FamilyPercentage
	// FamilyDecimal behaves like FamilyStandard.
	FamilyDecimal
)

var familyNames = [...]string{"standard", "currency", "percentage", "decimal"}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// ParseFamily returns a family for its name.
func ParseFamily(s string) (Family, error) {
	for i, name := range familyNames {
		if name == s {
			return Family(i), nil
		}
	}
	return FamilyStandard, fmt.Errorf("unknown format family %q", s)
}

// Notation selects how the magnitude of a standard/decimal number is written.
type Notation int

const (
	NotationStandard Notation = iota
	NotationScientific
	// NotationEngineering is scientific notation with an exponent divisible by 3.
	NotationEngineering
)

var notationNames = [...]string{"standard", "scientific", "engineering"}

func (n Notation) String() string {
	if n < 0 || int(n) >= len(notationNames) {
		return fmt.Sprintf("Notation(%d)", int(n))
	}
	return notationNames[n]
}

// ParseNotation returns a notation for its name.
func ParseNotation(s string) (Notation, error) {
	for i, name := range notationNames {
		if name == s {
			return Notation(i), nil
		}
	}
	return NotationStandard, fmt.Errorf("unknown notation %q", s)
}

// Options describe how a value is turned into text.
type Options struct {
	Family   Family
	Notation Notation
	// Abbreviate enables short-scale suffixes (K, M, B, T, Q).
	// It takes precedence over Notation.
	Abbreviate bool
	// MaxTotalDigits limits the number of shown digits when Abbreviate is set or
	// Notation is not standard. Zero or less disables the limit.
	MaxTotalDigits int
	// FixedDecimalPlaces is the number of fraction digits.
	// Negative means the locale default: the currency's standard digits for currencies, 0 otherwise.
	FixedDecimalPlaces int
	// Locale is a BCP 47 tag, like "en-US".
	Locale string
	// Currency is an ISO 4217 code, used by FamilyCurrency only.
	Currency string
}

// DefaultOptions returns options for plain en-US numbers.
func DefaultOptions() Options {
	return Options{
		Family:   FamilyStandard,
		Notation: NotationStandard,
		Locale:   "en-US",
		Currency: "USD",
	}
}

// Validate checks enum values of the options.
func (o Options) Validate() error {
	if o.Family < FamilyStandard || o.Family > FamilyDecimal {
		return fmt.Errorf("invalid format family %d", int(o.Family))
	}
	if o.Notation < NotationStandard || o.Notation > NotationEngineering {
		return fmt.Errorf("invalid notation %d", int(o.Notation))
	}
	return nil
}

// effectiveNotation resolves the abbreviation/notation conflict.
func (o Options) effectiveNotation() Notation {
	if o.Abbreviate {
		return NotationStandard
	}
	return o.Notation
}

func (o Options) decimalPlaces() int {
	if o.FixedDecimalPlaces < 0 {
		return 0
	}
	return o.FixedDecimalPlaces
}
