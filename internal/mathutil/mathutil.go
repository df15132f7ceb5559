// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"math"
	"math/bits"
	"strconv"
	"unsafe"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

// Pow10 returns 10^pow.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// IntegerDigits returns the number of digits before the decimal point of abs(f).
// Values with magnitude below 1 have no integer digits.
// Unlike floor(log10(f))+1 it is exact at powers of ten.
func IntegerDigits(f float64) int {
	f = math.Abs(f)
	if f < 1 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	if f < math.MaxUint64 {
		return DecimalDigits(uint64(f))
	}
	return len(strconv.FormatFloat(math.Floor(f), 'f', 0, 64))
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

// FloorDiv returns floor(a/b) for b > 0.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
