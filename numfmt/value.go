// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numfmt

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	gvdecimal "github.com/govalues/decimal"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

const delim = '.'

// Coerce converts a numeric value to a finite float64.
// Supported are Go integer and float kinds, numeric strings and json.Number,
// shopspring and govalues decimals and robaho fixed-point values.
// Errors wrap ErrInvalidValue.
func Coerce(v interface{}) (float64, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case string:
		return ParseString(x)
	case json.Number:
		return ParseString(string(x))
	case decimal.Decimal:
		f = x.InexactFloat64()
	case gvdecimal.Decimal:
		return ParseString(x.String())
	case fixed.Fixed:
		if x.IsNaN() {
			return 0, fmt.Errorf("%w: fixed NaN", ErrInvalidValue)
		}
		f = x.Float()
	case nil:
		return 0, fmt.Errorf("%w: nil", ErrInvalidValue)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidValue, f)
	}
	return f, nil
}

// ParseString parses a decimal string, like "-1234.5" or "1.5e6", into a finite float64.
// Surrounding spaces and double quotes are ignored. Errors wrap ErrInvalidValue and
// report the 1-based position of the offending symbol.
func ParseString(s string) (float64, error) {
	prepared, offset, neg := prepareString(s)
	if len(prepared) == 0 {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidValue)
	}
	if err := validateNumber(prepared); err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return 0, fmt.Errorf("%w: parsing failed: %w", ErrInvalidValue, addPosErrorOffset(err, offset+1))
	}
	f, err := strconv.ParseFloat(prepared, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if neg {
		f = -f
	}
	return f, nil
}

// prepareString cleans the string from ",-,+ symbols, and spaces.
func prepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return "", 0, false
	}
	if s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

// validateNumber checks that s is a decimal number with an optional exponent.
func validateNumber(s string) error {
	delimPos, digits := -1, 0
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			digits++
		case (r == 'e' || r == 'E') && digits > 0:
			if _, err := strconv.ParseInt(s[i+1:], 10, 32); err != nil {
				return newPosError("error parsing exponent", i+1)
			}
			return nil
		case r == delim:
			if delimPos != -1 {
				return newPosError("unexpected delimiter", i)
			}
			delimPos = i
		default:
			return newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if digits == 0 {
		return newPosError("no digits", len(s))
	}
	return nil
}
