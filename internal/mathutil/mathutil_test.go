// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint64
		res int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{999, 3},
		{1000, 4},
		{math.MaxUint64, 20},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, DecimalDigits(test.v))
		})
	}
}

func TestIntegerDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float64
		res int
	}{
		{0, 0},
		{0.999, 0},
		{1, 1},
		{-1, 1},
		{999.99, 3},
		{1000, 4},
		{1e6, 7},
		{-1234567.8, 7},
		{1e15, 16},
		{1e25, 26},
		{math.Inf(1), 0},
		{math.NaN(), 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, IntegerDigits(test.f))
		})
	}
}

func TestFloorDiv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res int
	}{
		{0, 3, 0},
		{2, 3, 0},
		{3, 3, 1},
		{-1, 3, -1},
		{-3, 3, -1},
		{-4, 3, -2},
		{7, 3, 2},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, FloorDiv(test.a, test.b))
		})
	}
}

func TestPow10(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(1), Pow10(0))
	a.Equal(uint64(1000), Pow10(3))
	a.Equal(uint64(0), Pow10(-1))
	a.Equal(uint64(0), Pow10(20))
}
