// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numfmt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is returned when a value cannot be coerced to a finite number.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnsupportedLocale is returned when a locale tag cannot be parsed.
	ErrUnsupportedLocale = errors.New("unsupported locale")
	// ErrUnsupportedCurrency is returned when a currency code is not a known ISO 4217 code.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}
