// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numfmt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalPlacesFor(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v           float64
		abbreviated bool
		max         int
		fallback    int
		res         int
	}{
		{1234.5678, false, 0, 2, 2},
		{1234.5678, false, -1, 3, 3},
		{1234.5678, false, 6, 2, 2},
		{1234.5678, false, 3, 2, 0},
		{0.5, false, 3, 0, 3},
		{-12.5, false, 3, 0, 1},
		{1234567, true, 3, 0, 2},
		{999999, true, 3, 0, 0},
		{1000000, true, 3, 0, 2},
		{1500, true, 2, 0, 1},
		{999, true, 2, 0, 0},
		{2.5e15, true, 4, 0, 3},
		{1e18, true, 4, 0, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, DecimalPlacesFor(test.v, test.abbreviated, test.max, test.fallback))
		})
	}
}

func TestShortScale(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v        float64
		max      int
		fallback int
		res      string
	}{
		{0, 3, 2, "0"},
		{0, 0, 0, "0"},
		{1234567, 3, 0, "1.23M"},
		{1234567, 0, 1, "1.2M"},
		{1234567, 0, 0, "1M"},
		{-1234567, 3, 0, "-1.23M"},
		{999, 3, 0, "999"},
		{999, 0, 2, "999"},
		{12.5, 0, 2, "12.5"},
		{1000, 3, 0, "1K"},
		{1999, 2, 1, "2K"},
		{1500, 2, 0, "1.5K"},
		{999999, 3, 0, "1M"},
		{999999, 6, 0, "999.999K"},
		{1e9, 2, 0, "1B"},
		{2.5e12, 2, 0, "2.5T"},
		{7.25e15, 3, 0, "7.25Q"},
		{1e18, 3, 0, "1000Q"},
		{-0.0001, 0, 2, "0"},
		{1005, 0, 2, "1.01K"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, ShortScale(test.v, test.max, test.fallback))
		})
	}
}

func TestShortScaleSuffixes(t *testing.T) {
	assert.Equal(t, "KMBTQ", ShortScaleSuffixes())
}
